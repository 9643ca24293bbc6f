package grouping

import (
	"reflect"
	"testing"

	"catalogo-bot/internal/models"
)

func labels(p Projection) []string {
	var out []string
	for _, g := range p.Groups {
		out = append(out, g.Label)
	}
	return out
}

func TestProject_ProMaxOnlyInItsGeneration(t *testing.T) {
	results := []models.Product{{Name: "iPhone 13 Pro Max", Category: models.CategoryIPhone}}

	proj := Project(models.CategoryIPhone, results)

	if !proj.Grouped {
		t.Fatal("expected grouped projection")
	}

	if got := labels(proj); !reflect.DeepEqual(got, []string{"IPHONE 13"}) {
		t.Errorf("groups = %v, want [IPHONE 13]", got)
	}
}

func TestProject_BucketOrderAndSortPreserved(t *testing.T) {
	results := []models.Product{
		{Name: "iPhone 15 Pro", PriceUSD: "900"},
		{Name: "iPhone 11", PriceUSD: "200"},
		{Name: "iPhone 15", PriceUSD: "700"},
		{Name: "iPhone XR", PriceUSD: "150"},
	}

	proj := Project(models.CategoryIPhone, results)

	if got := labels(proj); !reflect.DeepEqual(got, []string{"IPHONE 11", "IPHONE 15"}) {
		t.Fatalf("groups = %v", got)
	}

	fifteen := proj.Groups[1].Products
	if fifteen[0].Name != "iPhone 15 Pro" || fifteen[1].Name != "iPhone 15" {
		t.Errorf("order inside bucket changed: %v", fifteen)
	}

	if len(proj.Items) != 4 {
		t.Errorf("Items = %d, want the flat list of 4", len(proj.Items))
	}

	// XR não casa com nenhum modelo fixo
	if proj.Count() != 3 {
		t.Errorf("Count = %d, want 3", proj.Count())
	}
}

func TestProject_FlatForOtherCategories(t *testing.T) {
	results := []models.Product{{Name: "iPad Air"}, {Name: "iPad Pro"}}

	for _, c := range []models.Category{models.CategoryIPad, models.CategoryIPhoneNew, ""} {
		proj := Project(c, results)
		if proj.Grouped || proj.Groups != nil {
			t.Errorf("%q: expected flat projection", c)
		}
		if !reflect.DeepEqual(proj.Items, results) {
			t.Errorf("%q: items changed", c)
		}
	}
}

func TestProject_Empty(t *testing.T) {
	proj := Project(models.CategoryIPhone, nil)

	if len(proj.Groups) != 0 || len(proj.Items) != 0 || proj.Count() != 0 {
		t.Errorf("expected empty projection, got %+v", proj)
	}
}
