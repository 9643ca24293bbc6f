package bot

import (
	"fmt"
	"regexp"
	"strings"

	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/display"
	"catalogo-bot/internal/grouping"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/observability"
	"catalogo-bot/internal/query"
	"catalogo-bot/internal/selection"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// limite do Telegram é 4096; sobra espaço para o rodapé
const maxMessageLength = 3800

// escapeHTML escapa caracteres especiais do HTML
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	return text
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// plainText tira as tags para o reenvio sem formatação
func plainText(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	return strings.ReplaceAll(text, "&amp;", "&")
}

func (h *Handler) sendText(chatID int64, text string) {
	if _, err := h.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Error("Erro ao enviar mensagem", "chat", chatID, "erro", err)
	}
}

// sendHTML envia com HTML e, se o Telegram recusar, tenta sem formatação
func (h *Handler) sendHTML(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	if _, err := h.sender.Send(msg); err != nil {
		h.log.Warn("Erro ao enviar mensagem HTML, tentando sem formatação", "chat", chatID, "erro", err)
		msg.ParseMode = ""
		msg.Text = plainText(text)
		if _, err2 := h.sender.Send(msg); err2 != nil {
			h.log.Error("Erro ao enviar mensagem", "chat", chatID, "erro", err2)
		}
	}
}

// editHTML atualiza a mensagem dos botões; se não der, manda uma nova
func (h *Handler) editHTML(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	edit.ReplyMarkup = markup

	if _, err := h.sender.Send(edit); err != nil {
		h.log.Debug("Erro ao editar mensagem, enviando nova", "chat", chatID, "erro", err)
		h.sendHTML(chatID, text, markup)
	}
}

func (h *Handler) sendResults(chatID int64) {
	text, markup := h.results(h.session(chatID))
	h.sendHTML(chatID, text, markup)
}

// results executa a consulta e monta a mensagem com os botões de modelo
func (h *Handler) results(state *selection.State) (string, *tgbotapi.InlineKeyboardMarkup) {
	snap := state.Snapshot()
	idx := h.index()

	observability.CountQuery("bot")
	proj := grouping.Project(snap.Category, query.Execute(idx, snap))

	var sb strings.Builder
	fmt.Fprintf(&sb, "📱 <b>%s</b> · %d resultados\n", escapeHTML(snap.Category.Label()), len(proj.Items))
	if line := filtersLine(snap); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch {
	case len(proj.Items) == 0:
		sb.WriteString("😕 No hay productos con estos filtros. Probá /limpiar.")
	case proj.Grouped:
		writeGroups(&sb, proj.Groups, h.maxResults)
	default:
		writeProducts(&sb, proj.Items, h.maxResults)
	}

	return sb.String(), h.chipsKeyboard(snap, idx)
}

func writeGroups(sb *strings.Builder, groups []grouping.Group, limit int) {
	shown, total := 0, 0
	for _, g := range groups {
		total += len(g.Products)
	}

	for _, g := range groups {
		if shown >= limit || sb.Len() >= maxMessageLength {
			break
		}
		fmt.Fprintf(sb, "<b>%s</b>\n", escapeHTML(g.Label))
		for _, p := range g.Products {
			if shown >= limit || sb.Len() >= maxMessageLength {
				break
			}
			sb.WriteString(productLine(p))
			sb.WriteString("\n")
			shown++
		}
		sb.WriteString("\n")
	}

	writeMore(sb, total-shown)
}

func writeProducts(sb *strings.Builder, products []models.Product, limit int) {
	shown := 0
	for _, p := range products {
		if shown >= limit || sb.Len() >= maxMessageLength {
			break
		}
		sb.WriteString(productLine(p))
		sb.WriteString("\n")
		shown++
	}
	writeMore(sb, len(products)-shown)
}

func writeMore(sb *strings.Builder, remaining int) {
	if remaining > 0 {
		fmt.Fprintf(sb, "\n… y %d más. Afiná la búsqueda con /buscar o /precio.", remaining)
	}
}

// productLine monta uma linha com nome, selos, capacidade, cor, bateria e preços
func productLine(p models.Product) string {
	parts := []string{"• <b>" + escapeHTML(p.Name) + "</b>"}

	if badge := display.ModelBadge(p.Name); badge != "" {
		parts[0] += " <i>" + badge + "</i>"
	}
	if badge := display.CategoryBadge(p.Category); badge != "" {
		parts = append(parts, "🏷 "+escapeHTML(badge))
	}
	if p.Capacity != "" {
		parts = append(parts, escapeHTML(display.FormatCapacity(p.Capacity)))
	}
	if p.Color != "" {
		parts = append(parts, escapeHTML(p.Color))
	}
	if battery := display.BatteryLabel(p); battery != "" {
		parts = append(parts, battery)
	}
	if p.PriceUSD != "" {
		parts = append(parts, "<b>$ "+escapeHTML(display.FormatPrice(p.PriceUSD))+" USD</b>")
	}
	if p.PriceARS != "" {
		parts = append(parts, escapeHTML(display.FormatPrice(p.PriceARS))+" pesos")
	}
	if p.Video != "" {
		parts = append(parts, `<a href="`+escapeHTML(p.Video)+`">🎥 video</a>`)
	}

	return strings.Join(parts, " · ")
}

// filtersLine resume o que está filtrando além da categoria
func filtersLine(snap selection.Snapshot) string {
	var parts []string

	if snap.Model != "" {
		parts = append(parts, "Modelo: "+escapeHTML(snap.Model))
	}
	if snap.Submodel != "" {
		parts = append(parts, "Variante: "+escapeHTML(snap.Submodel))
	}
	if snap.Search != "" {
		parts = append(parts, "Búsqueda: \""+escapeHTML(snap.Search)+"\"")
	}
	if snap.Filters.Capacity != "" {
		parts = append(parts, "Capacidad: "+escapeHTML(snap.Filters.Capacity))
	}
	if snap.Filters.Color != "" {
		parts = append(parts, "Color: "+escapeHTML(snap.Filters.Color))
	}
	if snap.Filters.MinPrice != "" || snap.Filters.MaxPrice != "" {
		parts = append(parts, fmt.Sprintf("USD %s–%s", orDash(snap.Filters.MinPrice), orDash(snap.Filters.MaxPrice)))
	}
	switch snap.SortGen {
	case selection.GenNew:
		parts = append(parts, "Más nuevo primero")
	case selection.GenOld:
		parts = append(parts, "Más viejo primero")
	}
	switch snap.SortOrder {
	case selection.SortAsc:
		parts = append(parts, "Precio: menor a mayor")
	case selection.SortDesc:
		parts = append(parts, "Precio: mayor a menor")
	}

	if len(parts) == 0 {
		return ""
	}
	return "<i>" + strings.Join(parts, " · ") + "</i>"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return escapeHTML(s)
}

func renderSummary(snap selection.Snapshot) string {
	line := filtersLine(snap)
	if line == "" {
		line = "<i>Sin filtros</i>"
	}
	return fmt.Sprintf("🔧 <b>Categoría:</b> %s\n%s", escapeHTML(snap.Category.Label()), line)
}

func (h *Handler) sendTable(chatID int64) {
	snap := h.session(chatID).Snapshot()
	observability.CountQuery("bot")
	products := query.Execute(h.index(), snap)

	if len(products) == 0 {
		h.sendText(chatID, "😕 No hay productos con estos filtros. Probá /limpiar.")
		return
	}

	tbl := display.NewTable("Modelo", "GB", "Bat", "USD").MaxCellWidth(22)
	for _, p := range products {
		if tbl.Rows() >= h.maxResults {
			break
		}
		battery := ""
		if p.Battery != nil {
			battery = fmt.Sprintf("%d%%", *p.Battery)
		}
		tbl.AddRow(p.Name, display.FormatCapacity(p.Capacity), battery, display.FormatPrice(p.PriceUSD))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<pre>%s</pre>", escapeHTML(tbl.String()))
	writeMore(&sb, len(products)-tbl.Rows())
	h.sendHTML(chatID, sb.String(), nil)
}

func categoryKeyboard(current models.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	options := append([]models.Category{""}, models.AllCategories...)
	for _, c := range options {
		data := callbackCategory + string(c)
		if c == "" {
			data = callbackCategory + "todas"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(chip(c.Label(), c == current), data))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func modelKeyboard(current string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, m := range models.IPhoneModels {
		label := strings.TrimPrefix(m, "IPHONE ")
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(chip(label, m == current), callbackModel+m))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func submodelKeyboard(labels []string, current string) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, l := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(chip(l, strings.EqualFold(l, current)), callbackSubmodel+l))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// chipsKeyboard mostra os modelos na categoria iphone e as variantes quando
// há um modelo escolhido
func (h *Handler) chipsKeyboard(snap selection.Snapshot, idx *catalog.Index) *tgbotapi.InlineKeyboardMarkup {
	if snap.Category != models.CategoryIPhone {
		return nil
	}

	kb := modelKeyboard(snap.Model)
	if snap.Model != "" {
		if labels := query.Submodels(idx.Snapshot(), snap.Model); len(labels) > 0 {
			kb.InlineKeyboard = append(kb.InlineKeyboard, submodelKeyboard(labels, snap.Submodel).InlineKeyboard...)
		}
	}
	return &kb
}

func chip(label string, active bool) string {
	if active {
		return "✅ " + label
	}
	return label
}
