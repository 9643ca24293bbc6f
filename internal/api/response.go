package api

import (
	"time"

	"catalogo-bot/config"
	"catalogo-bot/internal/display"
	"catalogo-bot/internal/grouping"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/selection"
)

// ProductResponse é o produto com os campos de exibição já resolvidos
type ProductResponse struct {
	models.Product
	CapacityLabel string `json:"capacityLabel"`
	ModelBadge    string `json:"modelBadge,omitempty"`
	CategoryBadge string `json:"categoryBadge,omitempty"`
	BatteryLabel  string `json:"batteryLabel,omitempty"`
	PriceUSDLabel string `json:"priceUSDLabel,omitempty"`
	PriceARSLabel string `json:"priceARSLabel,omitempty"`
	Image         string `json:"image"`
}

type GroupResponse struct {
	Label    string            `json:"label"`
	Products []ProductResponse `json:"products"`
}

// CatalogResponse é a projeção da consulta para uma empresa
type CatalogResponse struct {
	Empresa       string             `json:"empresa"`
	CatalogID     string             `json:"catalogId"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Category      models.Category    `json:"category"`
	CategoryLabel string             `json:"categoryLabel"`
	Selection     selection.Snapshot `json:"selection"`
	Count         int                `json:"count"`
	Grouped       bool               `json:"grouped"`
	Groups        []GroupResponse    `json:"groups,omitempty"`
	Items         []ProductResponse  `json:"items"`
}

type EmpresaResponse struct {
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	DefaultCategory models.Category `json:"defaultCategory"`
	Products        int             `json:"products"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CategoryCount struct {
	Value models.Category `json:"value"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

type CategoriesResponse struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
}

type SubmodelsResponse struct {
	Model     string   `json:"model"`
	Submodels []string `json:"submodels"`
}

type OptionsResponse struct {
	Categories []selection.Option `json:"categories"`
	Models     []string           `json:"models"`
	Capacities []selection.Option `json:"capacities"`
	Colors     []selection.Option `json:"colors"`
	SortOrders []selection.Option `json:"sortOrders"`
	SortGens   []selection.Option `json:"sortGens"`
}

func fromProduct(p models.Product, images *display.ImageMap) ProductResponse {
	return ProductResponse{
		Product:       p,
		CapacityLabel: display.FormatCapacity(p.Capacity),
		ModelBadge:    display.ModelBadge(p.Name),
		CategoryBadge: display.CategoryBadge(p.Category),
		BatteryLabel:  display.BatteryLabel(p),
		PriceUSDLabel: display.FormatPrice(p.PriceUSD),
		PriceARSLabel: display.FormatPrice(p.PriceARS),
		Image:         images.Lookup(display.ProductImageKey(p)),
	}
}

func fromProducts(products []models.Product, images *display.ImageMap) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, fromProduct(p, images))
	}
	return out
}

func fromProjection(proj grouping.Projection, images *display.ImageMap) ([]GroupResponse, []ProductResponse) {
	var groups []GroupResponse
	if proj.Grouped {
		groups = make([]GroupResponse, 0, len(proj.Groups))
		for _, g := range proj.Groups {
			groups = append(groups, GroupResponse{Label: g.Label, Products: fromProducts(g.Products, images)})
		}
	}
	return groups, fromProducts(proj.Items, images)
}

func fromEmpresa(e config.Empresa, products int, updatedAt time.Time) EmpresaResponse {
	name := e.Name
	if name == "" {
		name = e.Slug
	}
	return EmpresaResponse{
		Slug:            e.Slug,
		Name:            name,
		DefaultCategory: e.DefaultCategory,
		Products:        products,
		UpdatedAt:       updatedAt,
	}
}
