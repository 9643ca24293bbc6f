package models

import "testing"

func TestRawRow_Get(t *testing.T) {
	row := RawRow{KeyModel: "iPhone 13"}

	if got := row.Get(KeyModel); got != "iPhone 13" {
		t.Errorf("Get(modelo) = %q, want iPhone 13", got)
	}

	if got := row.Get(KeyBattery); got != "" {
		t.Errorf("Get(bateria) = %q, want empty", got)
	}

	var nilRow RawRow
	if got := nilRow.Get(KeyModel); got != "" {
		t.Errorf("nil row Get = %q, want empty", got)
	}
}

func TestCategory_ValidAndLabel(t *testing.T) {
	for _, c := range AllCategories {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}

	if Category("tv").Valid() {
		t.Error("unknown category reported as valid")
	}

	if got := CategoryIPhoneNew.Label(); got != "Sellado / Nuevo" {
		t.Errorf("Label = %q", got)
	}

	if got := Category("").Label(); got != "Todas" {
		t.Errorf("empty Label = %q, want Todas", got)
	}
}
