package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"catalogo-bot/internal/models"
	"catalogo-bot/internal/selection"

	"github.com/shopspring/decimal"
)

// SortField é um critério de ordenação
type SortField string

const (
	SortByGeneration SortField = "generation"
	SortByPrice      SortField = "price"
)

// SortKey é um critério com direção
type SortKey struct {
	Field      SortField `json:"field"`
	Descending bool      `json:"descending"`
}

// Ranking devolve os critérios ativos do mais forte para o mais fraco.
// Com geração ativa ela decide a ordem e o preço só desempata, o mesmo
// resultado de ordenar de forma estável por preço e depois por geração.
func Ranking(snap selection.Snapshot) []SortKey {
	var keys []SortKey

	switch snap.SortGen {
	case selection.GenNew:
		keys = append(keys, SortKey{Field: SortByGeneration, Descending: true})
	case selection.GenOld:
		keys = append(keys, SortKey{Field: SortByGeneration})
	}

	switch snap.SortOrder {
	case selection.SortAsc:
		keys = append(keys, SortKey{Field: SortByPrice})
	case selection.SortDesc:
		keys = append(keys, SortKey{Field: SortByPrice, Descending: true})
	}

	return keys
}

var generationNeedles = func() []string {
	needles := make([]string, 0, 7)
	for gen := 17; gen >= 11; gen-- {
		needles = append(needles, fmt.Sprintf("iphone %d", gen))
	}
	return needles
}()

// Generation extrai a geração (11 a 17) do nome; 0 quando não reconhece
func Generation(name string) int {
	n := strings.ToLower(name)
	for i, needle := range generationNeedles {
		if strings.Contains(n, needle) {
			return 17 - i
		}
	}
	return 0
}

type ranked struct {
	product    models.Product
	generation int
	price      decimal.Decimal
}

// sortProducts ordena de forma estável segundo as chaves
func sortProducts(products []models.Product, keys []SortKey) []models.Product {
	if len(keys) == 0 || len(products) < 2 {
		return products
	}

	items := make([]ranked, len(products))
	for i, p := range products {
		items[i] = ranked{product: p, generation: Generation(p.Name), price: ParsePrice(p.PriceUSD)}
	}

	slices.SortStableFunc(items, func(a, b ranked) int {
		for _, key := range keys {
			var c int
			switch key.Field {
			case SortByGeneration:
				c = cmp.Compare(a.generation, b.generation)
			case SortByPrice:
				c = a.price.Cmp(b.price)
			}
			if key.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	for i, item := range items {
		products[i] = item.product
	}
	return products
}
