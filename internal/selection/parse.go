package selection

import (
	"strings"

	"catalogo-bot/internal/models"
)

// ParseSortOrder aceita os valores em inglês e em espanhol
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "ninguno", "no":
		return SortNone, nil
	case "asc", "menor", "barato":
		return SortAsc, nil
	case "desc", "mayor", "caro":
		return SortDesc, nil
	}
	return SortNone, ErrInvalidSortOrder
}

// ParseSortGen aceita os valores em inglês e em espanhol
func ParseSortGen(raw string) (SortGen, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "ninguno", "no":
		return GenNone, nil
	case "new", "nuevo", "nuevos":
		return GenNew, nil
	case "old", "viejo", "viejos":
		return GenOld, nil
	}
	return GenNone, ErrInvalidSortGen
}

// ParseCategory aceita o valor da categoria; "todas"/"all" significa sem filtro
func ParseCategory(raw string) (models.Category, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "todas", "all":
		return "", nil
	case "nuevo", "sellado":
		return models.CategoryIPhoneNew, nil
	case "sin-bateria", "sinbateria":
		return models.CategoryNoBattery, nil
	}

	c := models.Category(v)
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// ParseModel aceita "13", "iphone 13" ou "IPHONE 13" e devolve o rótulo fixo
func ParseModel(raw string) (string, bool) {
	v := strings.ToUpper(strings.Join(strings.Fields(raw), " "))
	if !strings.HasPrefix(v, "IPHONE ") {
		v = "IPHONE " + v
	}

	for _, m := range models.IPhoneModels {
		if m == v {
			return m, true
		}
	}
	return "", false
}
