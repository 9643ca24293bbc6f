package query

import (
	"strings"

	"catalogo-bot/internal/models"
)

// Variantes de um modelo de iPhone
const (
	VariantBase    = ""
	VariantMini    = "mini"
	VariantPlus    = "plus"
	VariantPro     = "pro"
	VariantProMax  = "pro max"
	variantMaxWord = "max"
)

// SubmodelRule decide como um submodelo escolhido casa com o nome do produto
type SubmodelRule struct {
	Variant string
	Applies func(submodel string) bool
	Accepts func(name, submodel string) bool
}

// SubmodelRules é avaliada em ordem; a primeira regra que se aplica ao
// submodelo decide. "pro" não aceita "pro max" e o modelo base não aceita
// nenhuma variante.
var SubmodelRules = []SubmodelRule{
	{
		Variant: VariantProMax,
		Applies: func(sub string) bool { return strings.Contains(sub, VariantProMax) },
		Accepts: func(name, _ string) bool { return strings.Contains(name, VariantProMax) },
	},
	{
		Variant: VariantPro,
		Applies: func(sub string) bool { return strings.Contains(sub, VariantPro) },
		Accepts: func(name, _ string) bool {
			return strings.Contains(name, VariantPro) && !strings.Contains(name, VariantProMax)
		},
	},
	{
		Variant: VariantMini,
		Applies: func(sub string) bool { return strings.Contains(sub, VariantMini) },
		Accepts: func(name, _ string) bool { return strings.Contains(name, VariantMini) },
	},
	{
		Variant: VariantPlus,
		Applies: func(sub string) bool { return strings.Contains(sub, VariantPlus) },
		Accepts: func(name, _ string) bool { return strings.Contains(name, VariantPlus) },
	},
	{
		Variant: VariantBase,
		Applies: func(string) bool { return true },
		Accepts: func(name, sub string) bool {
			token := baseToken(sub)
			if token != "" && !strings.Contains(name, token) {
				return false
			}
			for _, word := range []string{VariantPro, VariantMini, variantMaxWord, VariantPlus} {
				if strings.Contains(name, word) {
					return false
				}
			}
			return true
		},
	},
}

var baseWords = map[string]bool{"base": true, "estandar": true, "estándar": true, "normal": true, "iphone": true}

// baseToken tira do submodelo as palavras genéricas, ficando com o número
func baseToken(sub string) string {
	var kept []string
	for _, word := range strings.Fields(sub) {
		if !baseWords[word] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// MatchSubmodel verifica se o nome do produto corresponde ao submodelo escolhido
func MatchSubmodel(submodel, name string) bool {
	sub := strings.ToLower(strings.TrimSpace(submodel))
	lowerName := strings.ToLower(name)

	for _, rule := range SubmodelRules {
		if rule.Applies(sub) {
			return rule.Accepts(lowerName, sub)
		}
	}
	return false
}

// Variant identifica a variante pelo nome do produto
func Variant(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, VariantProMax):
		return VariantProMax
	case strings.Contains(n, VariantPro):
		return VariantPro
	case strings.Contains(n, VariantPlus):
		return VariantPlus
	case strings.Contains(n, VariantMini):
		return VariantMini
	}
	return VariantBase
}

var variantOrder = []string{VariantBase, VariantMini, VariantPlus, VariantPro, VariantProMax}

var variantTitles = map[string]string{
	VariantBase:   "",
	VariantMini:   " Mini",
	VariantPlus:   " Plus",
	VariantPro:    " Pro",
	VariantProMax: " Pro Max",
}

// Submodels lista os submodelos presentes no catálogo para um modelo,
// como "13", "13 Mini" e "13 Pro Max".
func Submodels(products []models.Product, model string) []string {
	lowerModel := strings.ToLower(strings.TrimSpace(model))
	if lowerModel == "" {
		return nil
	}
	number := strings.TrimSpace(strings.TrimPrefix(lowerModel, "iphone"))

	present := make(map[string]bool)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lowerModel) {
			present[Variant(p.Name)] = true
		}
	}

	var labels []string
	for _, v := range variantOrder {
		if present[v] {
			labels = append(labels, number+variantTitles[v])
		}
	}
	return labels
}
