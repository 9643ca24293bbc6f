package normalizer

import (
	"regexp"
	"strconv"
)

const maxBattery = 100

var digitsPattern = regexp.MustCompile(`\d+`)

// NormalizeBattery extrai a primeira sequência de dígitos do texto.
// Retorna nil quando não há dígitos. Leituras acima de 100 ficam em 100.
func NormalizeBattery(raw string) *int {
	match := digitsPattern.FindString(raw)
	if match == "" {
		return nil
	}

	val, err := strconv.Atoi(match)
	if err != nil || val > maxBattery {
		// overflow também significa um número enorme
		val = maxBattery
	}

	return &val
}
