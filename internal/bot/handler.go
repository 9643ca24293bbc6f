package bot

import (
	"context"
	"strings"
	"sync"

	"catalogo-bot/config"
	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/selection"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Refresher dispara um ciclo de ingestão sob demanda
type Refresher interface {
	Refresh(ctx context.Context, empresa string) (models.Ingestion, error)
}

// Options reúne as dependências do handler. Refresher é opcional.
type Options struct {
	Sender      Sender
	Catalogs    *catalog.Registry
	Empresa     config.Empresa
	Refresher   Refresher
	AdminChatID int64
	MaxResults  int
	Logger      *logger.Logger
}

// Handler atende os comandos e botões de um catálogo. Cada chat tem a sua
// própria seleção, guardada só em memória.
type Handler struct {
	sender      Sender
	catalogs    *catalog.Registry
	empresa     config.Empresa
	refresher   Refresher
	adminChatID int64
	maxResults  int
	log         *logger.Logger

	mu       sync.Mutex
	sessions map[int64]*selection.State
}

// New cria o handler
func New(opts Options) *Handler {
	h := &Handler{
		sender:      opts.Sender,
		catalogs:    opts.Catalogs,
		empresa:     opts.Empresa,
		refresher:   opts.Refresher,
		adminChatID: opts.AdminChatID,
		maxResults:  opts.MaxResults,
		log:         opts.Logger,
		sessions:    make(map[int64]*selection.State),
	}

	if h.maxResults <= 0 {
		h.maxResults = 40
	}
	if h.log == nil {
		h.log = logger.Discard()
	}
	if h.catalogs == nil {
		h.catalogs = catalog.NewRegistry(opts.Empresa.Slug)
	}

	return h
}

// session devolve a seleção do chat, criando uma nova na primeira mensagem
func (h *Handler) session(chatID int64) *selection.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[chatID]
	if !ok {
		s = selection.New(h.empresa.DefaultCategory)
		h.sessions[chatID] = s
	}
	return s
}

func (h *Handler) index() *catalog.Index {
	return h.catalogs.Store(h.empresa.Slug).Load()
}

func (h *Handler) isAdmin(chatID int64) bool {
	return h.adminChatID != 0 && chatID == h.adminChatID
}

// HandleUpdate trata uma mensagem ou um clique em botão
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || message.Text == "" {
		return
	}

	// Extrair comando (remover @botname se presente) e argumentos
	parts := strings.Fields(message.Text)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	if idx := strings.Index(command, "@"); idx > 0 {
		command = command[:idx]
	}
	args := strings.TrimSpace(strings.TrimPrefix(message.Text, parts[0]))
	chatID := message.Chat.ID

	switch command {
	case "/start", "/help", "/ayuda":
		h.handleHelp(chatID)
	case "/categorias":
		h.handleCategories(chatID)
	case "/categoria":
		h.handleCategory(chatID, args)
	case "/modelo":
		h.handleModel(chatID, args)
	case "/submodelo":
		h.handleSubmodel(chatID, args)
	case "/buscar":
		h.session(chatID).SetSearch(args)
		h.sendResults(chatID)
	case "/capacidad":
		h.handleCapacity(chatID, args)
	case "/color":
		h.handleColor(chatID, args)
	case "/precio":
		h.handlePrice(chatID, args)
	case "/orden":
		h.handleSortOrder(chatID, args)
	case "/generacion":
		h.handleSortGen(chatID, args)
	case "/limpiar":
		h.session(chatID).Reset()
		h.sendText(chatID, "🧹 Filtros borrados.")
		h.sendResults(chatID)
	case "/ver":
		h.sendResults(chatID)
	case "/tabla":
		h.sendTable(chatID)
	case "/estado":
		h.sendHTML(chatID, renderSummary(h.session(chatID).Snapshot()), nil)
	case "/status":
		h.handleStatus(chatID)
	case "/recargar":
		h.handleReload(ctx, chatID)
	default:
		h.sendText(chatID, "Comando no reconocido. Usá /ayuda para ver los comandos disponibles.")
	}
}

// prefixos dos dados dos botões
const (
	callbackCategory = "cat:"
	callbackModel    = "model:"
	callbackSubmodel = "sub:"
)

func (h *Handler) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	state := h.session(chatID)

	var err error
	switch {
	case strings.HasPrefix(cq.Data, callbackCategory):
		var c models.Category
		c, err = selection.ParseCategory(strings.TrimPrefix(cq.Data, callbackCategory))
		if err == nil {
			err = state.SetCategory(c)
		}
	case strings.HasPrefix(cq.Data, callbackModel):
		err = state.SelectModel(strings.TrimPrefix(cq.Data, callbackModel))
	case strings.HasPrefix(cq.Data, callbackSubmodel):
		err = state.SelectSubmodel(strings.TrimPrefix(cq.Data, callbackSubmodel))
	default:
		h.log.Warn("Botão desconhecido", "data", cq.Data)
	}

	answer := ""
	if err != nil {
		answer = userError(err)
	}
	if _, reqErr := h.sender.Request(tgbotapi.NewCallback(cq.ID, answer)); reqErr != nil {
		h.log.Warn("Erro ao responder botão", "erro", reqErr)
	}
	if err != nil {
		return
	}

	text, markup := h.results(state)
	h.editHTML(chatID, cq.Message.MessageID, text, markup)
}
