package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalogo-bot/internal/display"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/normalizer"
	"catalogo-bot/internal/query"
	"catalogo-bot/internal/selection"

	"github.com/shopspring/decimal"
)

const helpText = `🤖 <b>Catálogo</b>

<b>Navegación:</b>
<b>/categorias</b> - Elegir categoría con botones
<b>/categoria &lt;nombre&gt;</b> - iphone, nuevo, ipad, airpods, ps5, sin-bateria o todas
<b>/modelo &lt;número&gt;</b> - Ejemplo: /modelo 13 (solo en iPhone)
<b>/submodelo &lt;nombre&gt;</b> - Ejemplo: /submodelo 13 Pro Max

<b>Filtros:</b>
<b>/buscar &lt;texto&gt;</b> - Buscar por nombre
<b>/capacidad &lt;gb&gt;</b> - 64, 128, 256, 512 o 1tb
<b>/color &lt;color&gt;</b> - negro, blanco, azul, rojo, gold, silver...
<b>/precio &lt;mín&gt; &lt;máx&gt;</b> - En USD, usá - para no limitar. Ejemplo: /precio - 800
<b>/orden &lt;asc|desc|none&gt;</b> - Ordenar por precio
<b>/generacion &lt;nuevo|viejo|none&gt;</b> - Ordenar por generación

<b>/ver</b> - Ver resultados
<b>/tabla</b> - Ver resultados en tabla
<b>/estado</b> - Ver filtros activos
<b>/limpiar</b> - Borrar todos los filtros
<b>/ayuda</b> - Mostrar esta ayuda
`

func (h *Handler) handleHelp(chatID int64) {
	kb := categoryKeyboard(h.session(chatID).Category())
	h.sendHTML(chatID, helpText, &kb)
}

func (h *Handler) handleCategories(chatID int64) {
	kb := categoryKeyboard(h.session(chatID).Category())
	h.sendHTML(chatID, "📂 <b>Elegí una categoría:</b>", &kb)
}

func (h *Handler) handleCategory(chatID int64, args string) {
	c, err := selection.ParseCategory(args)
	if err == nil {
		err = h.session(chatID).SetCategory(c)
	}
	if err != nil {
		h.sendText(chatID, userError(err))
		return
	}
	h.sendResults(chatID)
}

func (h *Handler) handleModel(chatID int64, args string) {
	state := h.session(chatID)

	if args == "" {
		if state.Category() != models.CategoryIPhone {
			h.sendText(chatID, userError(selection.ErrModelRequiresIPhone))
			return
		}
		kb := modelKeyboard(state.Model())
		h.sendHTML(chatID, "📱 <b>Elegí un modelo:</b>", &kb)
		return
	}

	model, ok := selection.ParseModel(args)
	if !ok {
		h.sendText(chatID, fmt.Sprintf("❌ Modelo desconocido. Opciones: %s", strings.Join(models.IPhoneModels, ", ")))
		return
	}

	if err := state.SelectModel(model); err != nil {
		h.sendText(chatID, userError(err))
		return
	}
	h.sendResults(chatID)
}

func (h *Handler) handleSubmodel(chatID int64, args string) {
	state := h.session(chatID)

	if args == "" {
		if state.Model() == "" {
			h.sendText(chatID, userError(selection.ErrSubmodelRequiresModel))
			return
		}
		labels := query.Submodels(h.index().Snapshot(), state.Model())
		if len(labels) == 0 {
			h.sendText(chatID, "😕 No hay variantes de este modelo en el catálogo.")
			return
		}
		kb := submodelKeyboard(labels, state.Submodel())
		h.sendHTML(chatID, "🔎 <b>Elegí una variante:</b>", &kb)
		return
	}

	if err := state.SelectSubmodel(args); err != nil {
		h.sendText(chatID, userError(err))
		return
	}
	h.sendResults(chatID)
}

func (h *Handler) handleCapacity(chatID int64, args string) {
	// "128GB" e "128 gb" viram "128gb"; o filtro compara por substring
	h.session(chatID).SetCapacity(strings.ToLower(strings.ReplaceAll(args, " ", "")))
	h.sendResults(chatID)
}

func (h *Handler) handleColor(chatID int64, args string) {
	color := ""
	if args != "" {
		color = normalizer.NormalizeColor(args)
	}
	h.session(chatID).SetColor(color)
	h.sendResults(chatID)
}

func (h *Handler) handlePrice(chatID int64, args string) {
	parts := strings.Fields(args)
	if len(parts) > 2 {
		h.sendText(chatID, "❌ Formato incorrecto.\n\nUso: /precio <mín> <máx>\nEjemplo: /precio 300 800\nEjemplo: /precio - 800")
		return
	}

	limits := [2]string{}
	for i, p := range parts {
		if p == "-" {
			continue
		}
		price := normalizer.NormalizePrice(p)
		if _, err := decimal.NewFromString(price); err != nil {
			h.sendText(chatID, fmt.Sprintf("❌ Precio inválido: %s", p))
			return
		}
		limits[i] = price
	}

	h.session(chatID).SetPriceRange(limits[0], limits[1])
	h.sendResults(chatID)
}

func (h *Handler) handleSortOrder(chatID int64, args string) {
	order, err := selection.ParseSortOrder(args)
	if err != nil {
		h.sendText(chatID, userError(err))
		return
	}
	h.session(chatID).SetSortOrder(order)
	h.sendResults(chatID)
}

func (h *Handler) handleSortGen(chatID int64, args string) {
	gen, err := selection.ParseSortGen(args)
	if err != nil {
		h.sendText(chatID, userError(err))
		return
	}
	h.session(chatID).SetSortGen(gen)
	h.sendResults(chatID)
}

func (h *Handler) handleStatus(chatID int64) {
	if !h.isAdmin(chatID) {
		h.sendText(chatID, "⛔ Comando solo para administradores.")
		return
	}

	idx := h.index()
	counts := idx.CountByCategory()

	tbl := display.NewTable("Categoría", "Productos")
	for _, c := range models.AllCategories {
		tbl.AddRow(c.Label(), fmt.Sprint(counts[c]))
	}

	text := fmt.Sprintf("📊 <b>%s</b>\nProductos: %d\nActualizado: %s\n\n<pre>%s</pre>",
		escapeHTML(h.empresaName()), idx.Len(), idx.BuiltAt().Format("02/01/2006 15:04"), escapeHTML(tbl.String()))
	h.sendHTML(chatID, text, nil)
}

func (h *Handler) handleReload(ctx context.Context, chatID int64) {
	if !h.isAdmin(chatID) {
		h.sendText(chatID, "⛔ Comando solo para administradores.")
		return
	}
	if h.refresher == nil {
		h.sendText(chatID, "❌ Recarga no disponible.")
		return
	}

	h.sendText(chatID, "⏳ Recargando catálogo...")

	ing, err := h.refresher.Refresh(ctx, h.empresa.Slug)
	if err != nil {
		h.log.Error("Erro ao recarregar catálogo", "empresa", h.empresa.Slug, "erro", err)
		h.sendText(chatID, fmt.Sprintf("❌ Error al recargar: %v\nEl catálogo quedó vacío hasta la próxima lectura.", err))
		return
	}

	h.sendText(chatID, fmt.Sprintf("✅ Catálogo recargado: %d productos en %s.", ing.ProductCount, ing.Duration().Round(time.Millisecond)))
}

func (h *Handler) empresaName() string {
	if h.empresa.Name != "" {
		return h.empresa.Name
	}
	return h.empresa.Slug
}

// userError traduz os erros da seleção para o cliente
func userError(err error) string {
	switch {
	case errors.Is(err, selection.ErrModelRequiresIPhone):
		return "❌ Elegí la categoría iPhone para filtrar por modelo."
	case errors.Is(err, selection.ErrSubmodelRequiresModel):
		return "❌ Primero elegí un modelo con /modelo."
	case errors.Is(err, selection.ErrUnknownCategory):
		return "❌ Categoría desconocida. Usá /categorias."
	case errors.Is(err, selection.ErrInvalidSortOrder):
		return "❌ Orden inválido. Usá asc, desc o none."
	case errors.Is(err, selection.ErrInvalidSortGen):
		return "❌ Generación inválida. Usá nuevo, viejo o none."
	}
	return "❌ " + err.Error()
}
