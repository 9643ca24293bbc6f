// Package query aplica a seleção do cliente sobre o catálogo: filtra pela
// conjunção dos predicados ativos e depois ordena.
//
// Tudo aqui é função pura; rodar duas vezes com o mesmo índice e o mesmo
// estado devolve a mesma sequência.
package query

import (
	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/selection"
)

// Run filtra e ordena os produtos sem alterar a fatia recebida
func Run(products []models.Product, snap selection.Snapshot) []models.Product {
	preds := Predicates(snap)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchAll(preds, p) {
			result = append(result, p)
		}
	}

	return sortProducts(result, Ranking(snap))
}

// Execute roda a consulta sobre o índice
func Execute(idx *catalog.Index, snap selection.Snapshot) []models.Product {
	if idx == nil {
		return []models.Product{}
	}
	return Run(idx.Snapshot(), snap)
}

func matchAll(preds []Predicate, p models.Product) bool {
	for _, pred := range preds {
		if !pred.Match(p) {
			return false
		}
	}
	return true
}
