// Package api expõe o catálogo de cada empresa em JSON.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"catalogo-bot/config"
	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/display"
	"catalogo-bot/internal/grouping"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/normalizer"
	"catalogo-bot/internal/observability"
	"catalogo-bot/internal/query"
	"catalogo-bot/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultIngestionLimit = 20

// IngestionLister lê o histórico de ingestões
type IngestionLister interface {
	ListIngestions(ctx context.Context, empresa string, limit int) ([]models.Ingestion, error)
}

// Refresher dispara um ciclo de ingestão sob demanda
type Refresher interface {
	Refresh(ctx context.Context, empresa string) (models.Ingestion, error)
}

// Options reúne as dependências do handler. Ingestions e Refresher são opcionais.
type Options struct {
	Empresas   []config.Empresa
	Catalogs   *catalog.Registry
	Images     *display.ImageMap
	Ingestions IngestionLister
	Refresher  Refresher
	Logger     *logger.Logger
}

// Handler atende as rotas de catálogo
type Handler struct {
	empresas   []config.Empresa
	bySlug     map[string]config.Empresa
	catalogs   *catalog.Registry
	images     *display.ImageMap
	ingestions IngestionLister
	refresher  Refresher
	log        *logger.Logger
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		empresas:   opts.Empresas,
		bySlug:     make(map[string]config.Empresa, len(opts.Empresas)),
		catalogs:   opts.Catalogs,
		images:     opts.Images,
		ingestions: opts.Ingestions,
		refresher:  opts.Refresher,
		log:        opts.Logger,
	}
	for _, e := range opts.Empresas {
		h.bySlug[e.Slug] = e
	}
	if h.catalogs == nil {
		h.catalogs = catalog.NewRegistry()
	}
	if h.log == nil {
		h.log = logger.Discard()
	}
	return h
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// ListEmpresas lista as empresas configuradas com o tamanho do catálogo atual
func (h *Handler) ListEmpresas(c *gin.Context) {
	out := make([]EmpresaResponse, 0, len(h.empresas))
	for _, e := range h.empresas {
		idx := h.catalogs.Store(e.Slug).Load()
		out = append(out, fromEmpresa(e, idx.Len(), idx.BuiltAt()))
	}
	c.JSON(http.StatusOK, out)
}

// Catalog executa a consulta com os filtros da query string
func (h *Handler) Catalog(c *gin.Context) {
	empresa, ok := h.empresa(c)
	if !ok {
		return
	}

	state, err := stateFromQuery(c, empresa.DefaultCategory)
	if err != nil {
		abort(c, mapError(err))
		return
	}

	snap := state.Snapshot()
	idx := h.catalogs.Store(empresa.Slug).Load()

	observability.CountQuery("api")
	proj := grouping.Project(snap.Category, query.Execute(idx, snap))
	groups, items := fromProjection(proj, h.images)

	c.JSON(http.StatusOK, CatalogResponse{
		Empresa:       empresa.Slug,
		CatalogID:     idx.ID(),
		UpdatedAt:     idx.BuiltAt(),
		Category:      snap.Category,
		CategoryLabel: snap.Category.Label(),
		Selection:     snap,
		Count:         len(items),
		Grouped:       proj.Grouped,
		Groups:        groups,
		Items:         items,
	})
}

// Categories conta os produtos de cada categoria
func (h *Handler) Categories(c *gin.Context) {
	empresa, ok := h.empresa(c)
	if !ok {
		return
	}

	idx := h.catalogs.Store(empresa.Slug).Load()
	counts := idx.CountByCategory()

	out := CategoriesResponse{Total: idx.Len(), Categories: make([]CategoryCount, 0, len(models.AllCategories))}
	for _, cat := range models.AllCategories {
		out.Categories = append(out.Categories, CategoryCount{Value: cat, Label: cat.Label(), Count: counts[cat]})
	}
	c.JSON(http.StatusOK, out)
}

// Submodels lista as variantes de um modelo presentes no catálogo
func (h *Handler) Submodels(c *gin.Context) {
	empresa, ok := h.empresa(c)
	if !ok {
		return
	}

	model, ok := selection.ParseModel(c.Param("model"))
	if !ok {
		abort(c, mapError(ErrUnknownModel))
		return
	}

	idx := h.catalogs.Store(empresa.Slug).Load()
	submodels := query.Submodels(idx.Snapshot(), model)
	if submodels == nil {
		submodels = []string{}
	}
	c.JSON(http.StatusOK, SubmodelsResponse{Model: model, Submodels: submodels})
}

// Options devolve os valores aceitos pelos filtros
func (h *Handler) Options(c *gin.Context) {
	categories := []selection.Option{{Value: "todas", Label: models.Category("").Label()}}
	for _, cat := range models.AllCategories {
		categories = append(categories, selection.Option{Value: string(cat), Label: cat.Label()})
	}

	c.JSON(http.StatusOK, OptionsResponse{
		Categories: categories,
		Models:     models.IPhoneModels,
		Capacities: selection.CapacityOptions,
		Colors:     selection.ColorOptions,
		SortOrders: selection.SortOrderOptions,
		SortGens:   selection.SortGenOptions,
	})
}

// ListIngestions devolve o histórico de ingestões, do mais recente ao mais antigo
func (h *Handler) ListIngestions(c *gin.Context) {
	if h.ingestions == nil {
		abort(c, errAuditUnavailable)
		return
	}

	empresa := strings.ToLower(strings.TrimSpace(c.Query("empresa")))
	if empresa != "" {
		if _, ok := h.bySlug[empresa]; !ok {
			abort(c, errEmpresaNotFound)
			return
		}
	}

	limit := defaultIngestionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abort(c, mapError(ErrInvalidLimit))
			return
		}
		limit = n
	}

	list, err := h.ingestions.ListIngestions(c.Request.Context(), empresa, limit)
	if err != nil {
		h.log.Error("Erro ao listar ingestões", "empresa", empresa, "erro", err)
		abort(c, mapError(err))
		return
	}
	if list == nil {
		list = []models.Ingestion{}
	}
	c.JSON(http.StatusOK, list)
}

// Refresh relê a planilha da empresa na hora
func (h *Handler) Refresh(c *gin.Context) {
	if h.refresher == nil {
		abort(c, errRefreshUnavailable)
		return
	}

	empresa, ok := h.empresa(c)
	if !ok {
		return
	}

	ing, err := h.refresher.Refresh(c.Request.Context(), empresa.Slug)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, ing)
	case ing.ID != "":
		// a ingestão rodou e falhou; o catálogo ficou vazio
		c.JSON(http.StatusBadGateway, gin.H{"code": "INGESTION_FAILED", "message": err.Error(), "ingestion": ing})
	default:
		h.log.Error("Erro ao recarregar catálogo", "empresa", empresa.Slug, "erro", err)
		abort(c, mapError(err))
	}
}

// empresa resolve o parâmetro :empresa e responde 404 quando não existe
func (h *Handler) empresa(c *gin.Context) (config.Empresa, bool) {
	e, ok := h.bySlug[strings.ToLower(c.Param("empresa"))]
	if !ok {
		abort(c, errEmpresaNotFound)
	}
	return e, ok
}

// stateFromQuery aplica os parâmetros na mesma ordem da cascata:
// categoria, modelo, submodelo e depois os filtros independentes
func stateFromQuery(c *gin.Context, defaultCategory models.Category) (*selection.State, error) {
	state := selection.New(defaultCategory)

	if raw, ok := c.GetQuery("category"); ok {
		cat, err := selection.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		if err := state.SetCategory(cat); err != nil {
			return nil, err
		}
	}

	if raw := c.Query("model"); raw != "" {
		model, ok := selection.ParseModel(raw)
		if !ok {
			return nil, ErrUnknownModel
		}
		if err := state.SelectModel(model); err != nil {
			return nil, err
		}
	}

	if raw := c.Query("submodel"); raw != "" {
		if err := state.SelectSubmodel(raw); err != nil {
			return nil, err
		}
	}

	state.SetSearch(c.Query("search"))
	state.SetCapacity(strings.ToLower(strings.ReplaceAll(c.Query("capacity"), " ", "")))
	if color := strings.TrimSpace(c.Query("color")); color != "" {
		state.SetColor(normalizer.NormalizeColor(color))
	}

	minPrice, err := priceParam(c.Query("minPrice"))
	if err != nil {
		return nil, err
	}
	maxPrice, err := priceParam(c.Query("maxPrice"))
	if err != nil {
		return nil, err
	}
	state.SetPriceRange(minPrice, maxPrice)

	order, err := selection.ParseSortOrder(c.Query("sortOrder"))
	if err != nil {
		return nil, err
	}
	state.SetSortOrder(order)

	gen, err := selection.ParseSortGen(c.Query("sortGen"))
	if err != nil {
		return nil, err
	}
	state.SetSortGen(gen)

	return state, nil
}

func priceParam(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	price := normalizer.NormalizePrice(raw)
	if _, err := decimal.NewFromString(price); err != nil {
		return "", errors.Join(ErrInvalidPrice, err)
	}
	return price, nil
}
