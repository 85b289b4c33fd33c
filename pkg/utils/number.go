package utils

import "math"

const microUnitsPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicroToUnit converte valores em micro-unidades (10^6) da API
func MicroToUnit(v float64) float64 {
	return v / microUnitsPerUnit
}
