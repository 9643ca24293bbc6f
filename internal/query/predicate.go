package query

import (
	"strings"

	"catalogo-bot/internal/models"
	"catalogo-bot/internal/selection"

	"github.com/shopspring/decimal"
)

// Nomes dos predicados, na ordem de avaliação
const (
	PredicateCategory   = "category"
	PredicateModel      = "model"
	PredicateSubmodel   = "submodel"
	PredicateSearch     = "search"
	PredicateCapacity   = "capacity"
	PredicateColor      = "color"
	PredicatePriceRange = "price-range"
)

// Predicate é um filtro ativo sobre os produtos
type Predicate struct {
	Name  string
	Match func(p models.Product) bool
}

// Predicates devolve apenas os predicados ativos para o estado informado.
// Um produto entra no resultado quando todos eles são verdadeiros.
func Predicates(snap selection.Snapshot) []Predicate {
	var preds []Predicate

	if snap.Category != "" {
		category := snap.Category
		preds = append(preds, Predicate{
			Name:  PredicateCategory,
			Match: func(p models.Product) bool { return p.Category == category },
		})
	}

	if snap.Category == models.CategoryIPhone && snap.Model != "" {
		model := strings.ToLower(snap.Model)
		preds = append(preds, Predicate{
			Name:  PredicateModel,
			Match: func(p models.Product) bool { return strings.Contains(strings.ToLower(p.Name), model) },
		})
	}

	if snap.Submodel != "" {
		submodel := snap.Submodel
		preds = append(preds, Predicate{
			Name:  PredicateSubmodel,
			Match: func(p models.Product) bool { return MatchSubmodel(submodel, p.Name) },
		})
	}

	if snap.Search != "" {
		search := strings.ToLower(snap.Search)
		preds = append(preds, Predicate{
			Name:  PredicateSearch,
			Match: func(p models.Product) bool { return strings.Contains(strings.ToLower(p.Name), search) },
		})
	}

	if snap.Filters.Capacity != "" {
		capacity := strings.ToLower(snap.Filters.Capacity)
		preds = append(preds, Predicate{
			Name:  PredicateCapacity,
			Match: func(p models.Product) bool { return strings.Contains(strings.ToLower(p.Capacity), capacity) },
		})
	}

	if snap.Filters.Color != "" {
		color := strings.ToLower(snap.Filters.Color)
		preds = append(preds, Predicate{
			Name:  PredicateColor,
			Match: func(p models.Product) bool { return strings.Contains(strings.ToLower(p.Color), color) },
		})
	}

	minPrice, hasMin := parseLimit(snap.Filters.MinPrice)
	maxPrice, hasMax := parseLimit(snap.Filters.MaxPrice)
	if hasMin || hasMax {
		preds = append(preds, Predicate{
			Name: PredicatePriceRange,
			Match: func(p models.Product) bool {
				// preço ausente vale 0: sempre reprova no mínimo e sempre passa no máximo
				price := ParsePrice(p.PriceUSD)
				if hasMin && price.LessThan(minPrice) {
					return false
				}
				if hasMax && price.GreaterThan(maxPrice) {
					return false
				}
				return true
			},
		})
	}

	return preds
}

// ParsePrice interpreta um preço decimal com ponto; vazio ou inválido vale 0
func ParsePrice(text string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseLimit só considera o limite quando o texto é numérico
func parseLimit(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
