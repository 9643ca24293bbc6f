// Package catalog guarda o conjunto normalizado de produtos de um ciclo de ingestão.
package catalog

import (
	"time"

	"catalogo-bot/internal/models"
	"catalogo-bot/internal/normalizer"

	"github.com/google/uuid"
)

// Index é uma sequência ordenada e somente leitura de produtos normalizados
type Index struct {
	id       string
	builtAt  time.Time
	products []models.Product
}

// Build normaliza as linhas e monta um índice novo (uma entrada por linha, sem deduplicação)
func Build(rows []models.RawRow) *Index {
	return newIndex(normalizer.NormalizeAll(rows))
}

// FromProducts monta um índice a partir de produtos já normalizados
func FromProducts(products []models.Product) *Index {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return newIndex(cp)
}

// Empty retorna um índice sem produtos
func Empty() *Index {
	return newIndex(nil)
}

func newIndex(products []models.Product) *Index {
	return &Index{
		id:       uuid.NewString(),
		builtAt:  time.Now(),
		products: products,
	}
}

// ID identifica o ciclo de ingestão que gerou o índice
func (i *Index) ID() string { return i.id }

// BuiltAt retorna quando o índice foi montado
func (i *Index) BuiltAt() time.Time { return i.builtAt }

// Len retorna a quantidade de produtos
func (i *Index) Len() int { return len(i.products) }

// Snapshot retorna uma cópia dos produtos na ordem de ingestão
func (i *Index) Snapshot() []models.Product {
	cp := make([]models.Product, len(i.products))
	copy(cp, i.products)
	return cp
}

// Each percorre os produtos em ordem até fn retornar false
func (i *Index) Each(fn func(models.Product) bool) {
	for _, p := range i.products {
		if !fn(p) {
			return
		}
	}
}

// CountByCategory conta os produtos de cada categoria
func (i *Index) CountByCategory() map[models.Category]int {
	counts := make(map[models.Category]int, len(models.AllCategories))
	for _, p := range i.products {
		counts[p.Category]++
	}
	return counts
}
