package models

// Chaves canônicas de uma linha bruta da planilha
const (
	KeyModel    = "modelo"
	KeyCapacity = "capacidad"
	KeyBattery  = "bateria"
	KeyState    = "estado"
	KeyColor    = "color"
	KeyIMEI     = "imei"
	KeyProvider = "proveedor"
	KeyLocation = "ubicacion"
	KeyVideo    = "video"
	KeyPriceUSD = "venta_usd"
	KeyPriceARS = "venta_ars"
	KeyCost     = "costo"
	KeyROI      = "roi"
)

// RawKeys lista as chaves de uma linha bruta na ordem das colunas da planilha
var RawKeys = []string{
	KeyModel, KeyCapacity, KeyBattery, KeyState, KeyColor, KeyIMEI, KeyProvider,
	KeyLocation, KeyVideo, KeyPriceUSD, KeyPriceARS, KeyCost, KeyROI,
}

// RawRow representa uma linha da planilha sem nenhum tratamento
type RawRow map[string]string

// Get retorna o valor da chave ou string vazia se ela não existir
func (r RawRow) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Product representa um item normalizado do catálogo.
// É criado uma única vez por ciclo de ingestão e nunca alterado.
type Product struct {
	Name     string   `json:"name"`
	Capacity string   `json:"capacity"`
	Color    string   `json:"color"`
	Battery  *int     `json:"battery"` // nil = bateria desconhecida
	Category Category `json:"category"`
	PriceUSD string   `json:"priceUSD"`
	PriceARS string   `json:"priceARS"`
	IMEI     string   `json:"imei"`
	Provider string   `json:"provider"`
	Location string   `json:"location"`
	Video    string   `json:"video"`
}

// HasBattery indica se o produto tem leitura de bateria
func (p Product) HasBattery() bool {
	return p.Battery != nil
}
