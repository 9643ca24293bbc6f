// Package grouping separa o resultado da consulta em seções por modelo
// quando a categoria ativa é iphone.
package grouping

import (
	"strings"

	"catalogo-bot/internal/models"
)

// Group é uma seção com os produtos de um modelo, na ordem da consulta
type Group struct {
	Label    string           `json:"label"`
	Products []models.Product `json:"products"`
}

// Projection é o que a camada de exibição recebe.
// Items sempre traz a lista plana; Groups só é preenchido quando Grouped.
type Projection struct {
	Grouped bool             `json:"grouped"`
	Groups  []Group          `json:"groups,omitempty"`
	Items   []models.Product `json:"items"`
}

// Project agrupa os resultados pelos modelos fixos de iPhone.
// Um produto entra em todas as seções cujo modelo aparece no nome e
// seções vazias são omitidas.
func Project(category models.Category, results []models.Product) Projection {
	items := results
	if items == nil {
		items = []models.Product{}
	}

	proj := Projection{Items: items}
	if category != models.CategoryIPhone {
		return proj
	}

	proj.Grouped = true
	proj.Groups = []Group{}
	for _, label := range models.IPhoneModels {
		token := strings.ToLower(label)

		var members []models.Product
		for _, p := range results {
			if strings.Contains(strings.ToLower(p.Name), token) {
				members = append(members, p)
			}
		}

		if len(members) > 0 {
			proj.Groups = append(proj.Groups, Group{Label: label, Products: members})
		}
	}

	return proj
}

// Count soma os produtos de todas as seções
func (p Projection) Count() int {
	if !p.Grouped {
		return len(p.Items)
	}
	total := 0
	for _, g := range p.Groups {
		total += len(g.Products)
	}
	return total
}
