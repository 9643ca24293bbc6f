// Package display reúne as regras de apresentação de um produto: capacidade,
// selos, bateria, preço no formato argentino e a chave da imagem.
package display

import (
	"strings"

	"catalogo-bot/internal/models"
	"catalogo-bot/internal/query"
)

// FormatCapacity troca a primeira ocorrência de GB e TB por " GB" e " TB"
// e deixa tudo em maiúsculas: "128GB" vira "128 GB".
func FormatCapacity(capacity string) string {
	out := strings.Replace(capacity, "GB", " GB", 1)
	out = strings.Replace(out, "TB", " TB", 1)
	return strings.ToUpper(out)
}

var badgeTitles = map[string]string{
	query.VariantProMax: "Pro Max",
	query.VariantPro:    "Pro",
	query.VariantPlus:   "Plus",
	query.VariantMini:   "Mini",
}

// ModelBadge devolve o selo da variante ou vazio para o modelo base
func ModelBadge(name string) string {
	return badgeTitles[query.Variant(name)]
}

// CategoryBadge devolve o selo da categoria; iphone usado não tem selo
func CategoryBadge(c models.Category) string {
	if c == models.CategoryIPhone || !c.Valid() {
		return ""
	}
	return c.Label()
}

// BatteryLabel só aparece para iphone com leitura e para lacrados (sempre 100%)
func BatteryLabel(p models.Product) string {
	switch {
	case p.Category == models.CategoryIPhoneNew:
		return "🔋 100%"
	case p.Category == models.CategoryIPhone && p.Battery != nil:
		return "🔋 " + itoa(*p.Battery) + "%"
	}
	return ""
}
