package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o cliente que consome a API de relatórios
type Claims struct {
	ClientName string
	OrgID      string
	jwt.RegisteredClaims
}
