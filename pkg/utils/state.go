package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	stateLength = 24
)

// GenerateState gera o nonce anti-forgery do fluxo OAuth
func GenerateState() (string, error) {
	return gonanoid.Generate(characters, stateLength)
}
