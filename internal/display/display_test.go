package display

import (
	"strings"
	"testing"

	"catalogo-bot/internal/models"
)

func intPtr(n int) *int { return &n }

func TestFormatCapacity(t *testing.T) {
	tests := map[string]string{
		"128GB": "128 GB",
		"1tb":   "1TB",
		"1TB":   "1 TB",
		"":      "",
		"256gb": "256GB",
	}

	for in, want := range tests {
		if got := FormatCapacity(in); got != want {
			t.Errorf("FormatCapacity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModelBadge(t *testing.T) {
	tests := map[string]string{
		"iPhone 13 Pro Max": "Pro Max",
		"iPhone 14 Pro":     "Pro",
		"iPhone 15 Plus":    "Plus",
		"iPhone 12 mini":    "Mini",
		"iPhone 11":         "",
	}

	for name, want := range tests {
		if got := ModelBadge(name); got != want {
			t.Errorf("ModelBadge(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCategoryBadge(t *testing.T) {
	if got := CategoryBadge(models.CategoryIPhone); got != "" {
		t.Errorf("iphone badge = %q, want empty", got)
	}

	if got := CategoryBadge(models.CategoryNoBattery); got != "Sin datos de batería" {
		t.Errorf("no-battery badge = %q", got)
	}
}

func TestBatteryLabel(t *testing.T) {
	tests := []struct {
		name string
		p    models.Product
		want string
	}{
		{"used iphone", models.Product{Category: models.CategoryIPhone, Battery: intPtr(87)}, "🔋 87%"},
		{"sealed", models.Product{Category: models.CategoryIPhoneNew, Battery: intPtr(45)}, "🔋 100%"},
		{"ipad", models.Product{Category: models.CategoryIPad, Battery: intPtr(90)}, ""},
		{"unknown battery", models.Product{Category: models.CategoryNoBattery}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BatteryLabel(tt.p); got != tt.want {
				t.Errorf("BatteryLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := map[string]string{
		"394200.00": "394.200",
		"1234.5":    "1.234,5",
		"0.456":     "0,46",
		"999":       "999",
		"1000":      "1.000",
		"-1500":     "-1.500",
		"1234567.8": "1.234.567,8",
		"abc":       "abc",
		"":          "",
	}

	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Errorf("FormatPrice(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImageKey(t *testing.T) {
	if got := ImageKey("iPhone 13 Pro Max", "black"); got != "iphone 13 pro max_black" {
		t.Errorf("ImageKey = %q", got)
	}

	p := models.Product{Name: "iPhone  12 Mini", Color: "blue"}
	if got := ProductImageKey(p); got != "iphone 12 mini_blue" {
		t.Errorf("ProductImageKey = %q", got)
	}
}

func TestImageMap_ExactLookupWithPlaceholder(t *testing.T) {
	m := NewImageMap("/devices/placeholder.png", map[string]string{
		"iPhone 13_black": "/devices/iphone 13 negro.png",
	})

	if got := m.Lookup("iphone 13_black"); got != "/devices/iphone 13 negro.png" {
		t.Errorf("hit = %q", got)
	}

	// sem correspondência parcial
	if got := m.Lookup("iphone 13 pro_black"); got != "/devices/placeholder.png" {
		t.Errorf("miss = %q, want placeholder", got)
	}

	var nilMap *ImageMap
	if got := nilMap.Lookup("x"); got != "" {
		t.Errorf("nil map = %q", got)
	}
}

func TestTable_AlignsByDisplayWidth(t *testing.T) {
	tbl := NewTable("Modelo", "Precio")
	tbl.AddRow("iPhone 13", "600")
	tbl.AddRow("Batería ñ", "1.200")

	lines := strings.Split(tbl.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), tbl.String())
	}

	if lines[0] != "Modelo     Precio" {
		t.Errorf("header = %q", lines[0])
	}

	if lines[3] != "Batería ñ  1.200" {
		t.Errorf("row = %q", lines[3])
	}

	if tbl.Rows() != 2 {
		t.Errorf("Rows = %d", tbl.Rows())
	}
}

func TestTable_TruncatesLongCells(t *testing.T) {
	tbl := NewTable("Modelo").MaxCellWidth(8)
	tbl.AddRow("iPhone 13 Pro Max")

	lines := strings.Split(tbl.String(), "\n")
	if lines[2] != "iPhone …" {
		t.Errorf("row = %q", lines[2])
	}
}
