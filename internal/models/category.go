package models

// Category é a classificação principal de um produto
type Category string

const (
	CategoryIPhone    Category = "iphone"
	CategoryIPhoneNew Category = "iphone-new"
	CategoryIPad      Category = "ipad"
	CategoryAirPods   Category = "airpods"
	CategoryPS5       Category = "ps5"
	CategoryNoBattery Category = "no-battery"
)

// AllCategories na ordem em que aparecem para o cliente
var AllCategories = []Category{
	CategoryIPhone,
	CategoryIPhoneNew,
	CategoryIPad,
	CategoryAirPods,
	CategoryPS5,
	CategoryNoBattery,
}

var categoryLabels = map[Category]string{
	CategoryIPhone:    "iPhone",
	CategoryIPhoneNew: "Sellado / Nuevo",
	CategoryIPad:      "iPad",
	CategoryAirPods:   "AirPods",
	CategoryPS5:       "PS5 Accesorio",
	CategoryNoBattery: "Sin datos de batería",
}

// Valid verifica se a categoria é uma das seis conhecidas
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label retorna o rótulo exibido ao cliente
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Todas"
}

// IPhoneModels são os rótulos fixos dos modelos, do mais antigo ao mais novo
var IPhoneModels = []string{
	"IPHONE 11",
	"IPHONE 12",
	"IPHONE 13",
	"IPHONE 14",
	"IPHONE 15",
	"IPHONE 16",
	"IPHONE 17",
}
