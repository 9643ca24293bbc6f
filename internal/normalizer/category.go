package normalizer

import (
	"strings"

	"catalogo-bot/internal/models"
)

// CategoryInput são os dados usados na classificação, já em minúsculas
type CategoryInput struct {
	Name    string
	Battery *int
	State   string
}

// CategoryRule é uma regra de classificação nomeada
type CategoryRule struct {
	Name     string
	Match    func(in CategoryInput) bool
	Category models.Category
}

// CategoryRules é avaliada em ordem e a primeira regra que casar decide.
// A última regra sempre casa, então a classificação é total.
var CategoryRules = []CategoryRule{
	{
		Name:     "name-ipad",
		Match:    func(in CategoryInput) bool { return strings.Contains(in.Name, "ipad") },
		Category: models.CategoryIPad,
	},
	{
		Name:     "name-airpods",
		Match:    func(in CategoryInput) bool { return strings.Contains(in.Name, "airpod") },
		Category: models.CategoryAirPods,
	},
	{
		Name: "name-ps5",
		Match: func(in CategoryInput) bool {
			return strings.Contains(in.Name, "ps5") ||
				strings.Contains(in.Name, "playstation") ||
				strings.Contains(in.Name, "dualsense")
		},
		Category: models.CategoryPS5,
	},
	{
		Name:     "state-sealed",
		Match:    func(in CategoryInput) bool { return isSealed(in.State) },
		Category: models.CategoryIPhoneNew,
	},
	{
		Name:     "battery-missing",
		Match:    func(in CategoryInput) bool { return in.Battery == nil },
		Category: models.CategoryNoBattery,
	},
	{
		Name:     "default",
		Match:    func(CategoryInput) bool { return true },
		Category: models.CategoryIPhone,
	},
}

// DetectCategory classifica um produto pelo nome, bateria e estado.
func DetectCategory(name string, battery *int, state string) models.Category {
	in := CategoryInput{
		Name:    strings.ToLower(name),
		Battery: battery,
		State:   strings.ToLower(state),
	}

	for _, rule := range CategoryRules {
		if rule.Match(in) {
			return rule.Category
		}
	}

	return models.CategoryIPhone
}

// isSealed recebe o estado em minúsculas
func isSealed(state string) bool {
	return strings.Contains(state, "nuevo") || strings.Contains(state, "sellado")
}
