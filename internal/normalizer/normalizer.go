package normalizer

import (
	"strings"

	"catalogo-bot/internal/models"
)

// NormalizeData converte uma linha bruta em um produto do catálogo.
//
// Produtos selados ou novos sempre saem com 100% de bateria, e essa troca
// acontece antes da classificação, por isso caem em iphone-new mesmo sem
// leitura de bateria na planilha.
func NormalizeData(row models.RawRow) models.Product {
	state := row.Get(models.KeyState)

	battery := NormalizeBattery(row.Get(models.KeyBattery))
	if isSealed(strings.ToLower(state)) {
		full := maxBattery
		battery = &full
	}

	name := row.Get(models.KeyModel)

	return models.Product{
		Name:     name,
		Capacity: row.Get(models.KeyCapacity),
		Color:    NormalizeColor(row.Get(models.KeyColor)),
		Battery:  battery,
		Category: DetectCategory(name, battery, state),
		PriceUSD: NormalizePrice(row.Get(models.KeyPriceUSD)),
		PriceARS: NormalizePrice(row.Get(models.KeyPriceARS)),
		IMEI:     row.Get(models.KeyIMEI),
		Provider: row.Get(models.KeyProvider),
		Location: row.Get(models.KeyLocation),
		Video:    row.Get(models.KeyVideo),
	}
}

// NormalizeAll normaliza todas as linhas mantendo a ordem, uma saída por linha
func NormalizeAll(rows []models.RawRow) []models.Product {
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, NormalizeData(row))
	}
	return products
}
