package normalizer

import "strings"

// Cores canônicas
const (
	ColorSilver   = "silver"
	ColorBlack    = "black"
	ColorWhite    = "white"
	ColorBlue     = "blue"
	ColorTitanium = "titanium"
	ColorPink     = "pink"
	ColorRed      = "red"
	ColorGold     = "gold"
)

// ColorRule associa palavras-chave a uma cor canônica
type ColorRule struct {
	Keywords []string
	Color    string
}

// ColorRules é avaliada em ordem; a primeira regra com alguma palavra contida no texto vence
var ColorRules = []ColorRule{
	{Keywords: []string{"silver", "plata", "plateado"}, Color: ColorSilver},
	{Keywords: []string{"black", "negro", "midnight"}, Color: ColorBlack},
	{Keywords: []string{"white", "blanco", "starlight"}, Color: ColorWhite},
	{Keywords: []string{"blue", "azul"}, Color: ColorBlue},
	{Keywords: []string{"titanium"}, Color: ColorTitanium},
	{Keywords: []string{"pink", "rosa"}, Color: ColorPink},
	{Keywords: []string{"red", "rojo"}, Color: ColorRed},
	{Keywords: []string{"gold", "dorado"}, Color: ColorGold},
}

// NormalizeColor mapeia o texto livre da planilha para uma cor canônica.
// Sem correspondência devolve o próprio texto em minúsculas.
func NormalizeColor(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))

	for _, rule := range ColorRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Color
			}
		}
	}

	return lower
}
