package normalizer

import (
	"testing"

	"catalogo-bot/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Thousands dot and decimal comma", raw: "394.200,00", want: "394200.00"},
		{name: "Decimal comma only", raw: "270,00", want: "270.00"},
		{name: "Plain integer", raw: "1999", want: "1999"},
		{name: "Currency symbols stripped", raw: "US$ 1.250,50", want: "1250.50"},
		{name: "Dot decimal kept", raw: "899.99", want: "899.99"},
		{name: "Empty", raw: "", want: ""},
		{name: "Garbage", raw: "consultar", want: ""},
		{name: "Minus kept", raw: "-15", want: "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePrice(tt.raw); got != tt.want {
				t.Errorf("NormalizePrice(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Midnight", want: ColorBlack},
		{raw: "Space Gray", want: "space gray"},
		{raw: "Plateado", want: ColorSilver},
		{raw: "Starlight", want: ColorWhite},
		{raw: "Sierra Blue", want: ColorBlue},
		{raw: "Natural Titanium", want: ColorTitanium},
		{raw: "ROSA", want: ColorPink},
		{raw: "(PRODUCT)RED", want: ColorRed},
		{raw: "Dorado", want: ColorGold},
		{raw: "  Verde  ", want: "verde"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeColor(tt.raw); got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeColor_FirstRuleWins(t *testing.T) {
	// "silver" vem antes de "black" na tabela
	if got := NormalizeColor("Silver / Black"); got != ColorSilver {
		t.Errorf("got %q, want silver", got)
	}
}

func TestNormalizeBattery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "Percent", raw: "85%", want: intPtr(85)},
		{name: "Empty", raw: "", want: nil},
		{name: "No digits", raw: "sin dato", want: nil},
		{name: "Digits inside text", raw: "bateria 91 % ok", want: intPtr(91)},
		{name: "Zero", raw: "0", want: intPtr(0)},
		{name: "Above range clamped", raw: "150", want: intPtr(100)},
		{name: "Overflow clamped", raw: "99999999999999999999999", want: intPtr(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBattery(tt.raw)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("NormalizeBattery(%q) = %d, want nil", tt.raw, *got)
			case tt.want != nil && got == nil:
				t.Errorf("NormalizeBattery(%q) = nil, want %d", tt.raw, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("NormalizeBattery(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name    string
		product string
		battery *int
		state   string
		want    models.Category
	}{
		{name: "iPad wins over battery and state", product: "iPad Air", battery: nil, state: "usado", want: models.CategoryIPad},
		{name: "AirPods", product: "AirPods 4", battery: intPtr(100), state: "sellado", want: models.CategoryAirPods},
		{name: "PS5", product: "PS5 Digital", battery: nil, state: "nuevo", want: models.CategoryPS5},
		{name: "PlayStation", product: "PlayStation 5 Slim", battery: nil, state: "", want: models.CategoryPS5},
		{name: "DualSense", product: "Mando DualSense", battery: nil, state: "", want: models.CategoryPS5},
		{name: "Missing battery", product: "iPhone 13", battery: nil, state: "usado", want: models.CategoryNoBattery},
		{name: "Sealed beats battery reading", product: "iPhone 13", battery: intPtr(80), state: "sellado", want: models.CategoryIPhoneNew},
		{name: "Nuevo case insensitive", product: "iPhone 15", battery: nil, state: "NUEVO", want: models.CategoryIPhoneNew},
		{name: "Used with battery", product: "iPhone 12 Pro", battery: intPtr(88), state: "usado", want: models.CategoryIPhone},
		{name: "Unknown device without battery", product: "Apple Watch", battery: nil, state: "", want: models.CategoryNoBattery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.product, tt.battery, tt.state); got != tt.want {
				t.Errorf("DetectCategory(%q) = %s, want %s", tt.product, got, tt.want)
			}
		})
	}
}

func TestCategoryRules_Order(t *testing.T) {
	want := []string{"name-ipad", "name-airpods", "name-ps5", "state-sealed", "battery-missing", "default"}

	if len(CategoryRules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(CategoryRules), len(want))
	}

	for i, rule := range CategoryRules {
		if rule.Name != want[i] {
			t.Errorf("rule[%d] = %s, want %s", i, rule.Name, want[i])
		}
	}
}

func TestNormalizeData_SealedOverridesBattery(t *testing.T) {
	p := NormalizeData(models.RawRow{
		models.KeyModel:   "iPhone 14",
		models.KeyState:   "Nuevo",
		models.KeyBattery: "45%",
	})

	if p.Battery == nil || *p.Battery != 100 {
		t.Fatalf("Battery = %v, want 100", p.Battery)
	}

	if p.Category != models.CategoryIPhoneNew {
		t.Errorf("Category = %s, want iphone-new", p.Category)
	}
}

func TestNormalizeData_SealedWithoutBatteryText(t *testing.T) {
	p := NormalizeData(models.RawRow{
		models.KeyModel: "iPhone 13",
		models.KeyState: "sellado",
	})

	if p.Battery == nil || *p.Battery != 100 {
		t.Fatalf("Battery = %v, want 100", p.Battery)
	}

	if p.Category != models.CategoryIPhoneNew {
		t.Errorf("Category = %s, want iphone-new", p.Category)
	}
}

func TestNormalizeData_Fields(t *testing.T) {
	row := models.RawRow{
		models.KeyModel:    "iPhone 13 Pro Max",
		models.KeyCapacity: "256GB",
		models.KeyBattery:  "88%",
		models.KeyState:    "usado",
		models.KeyColor:    "Sierra Blue",
		models.KeyIMEI:     "356789",
		models.KeyProvider: "Prov A",
		models.KeyLocation: "Local 1",
		models.KeyVideo:    "https://example.com/v.mp4",
		models.KeyPriceUSD: "900",
		models.KeyPriceARS: "1.080.000,00",
		models.KeyCost:     "700",
		models.KeyROI:      "28%",
	}

	p := NormalizeData(row)

	if p.Name != "iPhone 13 Pro Max" || p.Capacity != "256GB" {
		t.Errorf("pass-through fields wrong: %+v", p)
	}

	if p.Color != ColorBlue {
		t.Errorf("Color = %s, want blue", p.Color)
	}

	if p.Battery == nil || *p.Battery != 88 {
		t.Errorf("Battery = %v, want 88", p.Battery)
	}

	if p.Category != models.CategoryIPhone {
		t.Errorf("Category = %s, want iphone", p.Category)
	}

	if p.PriceUSD != "900" || p.PriceARS != "1080000.00" {
		t.Errorf("prices = %q / %q", p.PriceUSD, p.PriceARS)
	}

	if p.IMEI != "356789" || p.Provider != "Prov A" || p.Location != "Local 1" || p.Video == "" {
		t.Errorf("metadata fields wrong: %+v", p)
	}
}

func TestNormalizeData_EmptyRow(t *testing.T) {
	p := NormalizeData(nil)

	if p.Category != models.CategoryNoBattery {
		t.Errorf("Category = %s, want no-battery", p.Category)
	}

	if p.Battery != nil || p.PriceUSD != "" || p.Color != "" {
		t.Errorf("empty row produced values: %+v", p)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	rows := []models.RawRow{
		{models.KeyModel: "B"},
		{models.KeyModel: "A"},
		{models.KeyModel: "B"},
	}

	products := NormalizeAll(rows)
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}

	for i, want := range []string{"B", "A", "B"} {
		if products[i].Name != want {
			t.Errorf("products[%d] = %s, want %s", i, products[i].Name, want)
		}
	}
}
