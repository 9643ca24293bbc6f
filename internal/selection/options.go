package selection

// Option é um valor que o cliente pode escolher em um filtro
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CapacityOptions são as capacidades oferecidas no filtro
var CapacityOptions = []Option{
	{Value: "64", Label: "64GB"},
	{Value: "128", Label: "128GB"},
	{Value: "256", Label: "256GB"},
	{Value: "512", Label: "512GB"},
	{Value: "1tb", Label: "1TB"},
}

// ColorOptions são as cores oferecidas no filtro
var ColorOptions = []Option{
	{Value: "negro", Label: "Negro"},
	{Value: "blanco", Label: "Blanco"},
	{Value: "azul", Label: "Azul"},
	{Value: "rojo", Label: "Rojo"},
	{Value: "gold", Label: "Gold"},
	{Value: "silver", Label: "Silver"},
}

// SortOrderOptions e SortGenOptions seguem a ordem dos seletores
var (
	SortOrderOptions = []Option{
		{Value: string(SortNone), Label: "Precio"},
		{Value: string(SortAsc), Label: "Menor a mayor"},
		{Value: string(SortDesc), Label: "Mayor a menor"},
	}
	SortGenOptions = []Option{
		{Value: string(GenNone), Label: "Generación"},
		{Value: string(GenNew), Label: "Más nuevo"},
		{Value: string(GenOld), Label: "Más viejo"},
	}
)
