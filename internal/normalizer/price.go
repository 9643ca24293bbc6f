// Package normalizer converte linhas brutas da planilha em produtos do catálogo.
//
// Nenhuma função deste pacote falha: entradas malformadas viram o valor
// padrão de cada campo (string vazia, nil, texto em minúsculas ou a
// categoria de fallback).
package normalizer

import (
	"regexp"
	"strings"
)

var priceJunkPattern = regexp.MustCompile(`[^0-9.,\-]`)

// NormalizePrice converte um preço em formato local para texto decimal com ponto.
//
//	"394.200,00" -> "394200.00"
//	"270,00"     -> "270.00"
//	"1999"       -> "1999"
//
// Quando há vírgula ela é o separador decimal e qualquer ponto é separador de
// milhar. Sem vírgula o texto limpo já é considerado decimal com ponto.
func NormalizePrice(raw string) string {
	cleaned := priceJunkPattern.ReplaceAllString(raw, "")

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	return cleaned
}
