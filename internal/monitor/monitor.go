// Package monitor mantém os catálogos atualizados: lê a planilha de cada
// empresa periodicamente, monta um índice novo e troca o anterior de uma vez.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"catalogo-bot/config"
	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/models"
	"catalogo-bot/internal/observability"
	"catalogo-bot/internal/scraper"
)

var ErrUnknownEmpresa = errors.New("empresa desconhecida")

// SourceFinder escolhe a fonte de linhas para uma URL
type SourceFinder interface {
	FindSource(url string) scraper.Source
}

// IngestionStore guarda o histórico dos ciclos
type IngestionStore interface {
	RecordIngestion(ctx context.Context, ing models.Ingestion, rows []models.RawRow) error
	LastSuccessfulRows(ctx context.Context, empresa string) (string, []models.RawRow, error)
	PruneIngestions(ctx context.Context, empresa string, keep int) (int64, error)
}

// Options reúne as dependências do monitor. Store é opcional.
type Options struct {
	Empresas []config.Empresa
	Catalogs *catalog.Registry
	Sources  SourceFinder
	Store    IngestionStore
	Retry    scraper.RetryPolicy
	Interval time.Duration
	// KeepIngestions é quantos ciclos por empresa ficam no banco
	KeepIngestions int
	Logger         *logger.Logger
}

// Monitor gerencia a atualização periódica dos catálogos
type Monitor struct {
	empresas map[string]config.Empresa
	order    []string
	catalogs *catalog.Registry
	sources  SourceFinder
	store    IngestionStore
	retry    scraper.RetryPolicy
	interval time.Duration
	keep     int
	log      *logger.Logger

	// um ciclo por vez; o mais novo sempre substitui o anterior
	mu sync.Mutex
}

// New cria uma nova instância do monitor
func New(opts Options) *Monitor {
	m := &Monitor{
		empresas: make(map[string]config.Empresa, len(opts.Empresas)),
		catalogs: opts.Catalogs,
		sources:  opts.Sources,
		store:    opts.Store,
		retry:    opts.Retry,
		interval: opts.Interval,
		keep:     opts.KeepIngestions,
		log:      opts.Logger,
	}

	if m.catalogs == nil {
		m.catalogs = catalog.NewRegistry()
	}
	if m.log == nil {
		m.log = logger.Discard()
	}
	if m.keep <= 0 {
		m.keep = 50
	}

	for _, e := range opts.Empresas {
		m.empresas[e.Slug] = e
		m.order = append(m.order, e.Slug)
		m.catalogs.Store(e.Slug)
	}

	return m
}

// Catalogs expõe o registro de catálogos lido pelo bot e pela API
func (m *Monitor) Catalogs() *catalog.Registry {
	return m.catalogs
}

// Start restaura o último catálogo salvo, atualiza tudo e segue no ticker
// até o contexto ser cancelado
func (m *Monitor) Start(ctx context.Context) {
	m.log.Info("Monitor iniciado", "empresas", len(m.order), "intervalo", m.interval)

	m.Restore(ctx)
	m.RefreshAll(ctx)

	if m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Monitor encerrado")
			return
		case <-ticker.C:
			m.RefreshAll(ctx)
		}
	}
}

// RefreshAll atualiza todas as empresas em sequência
func (m *Monitor) RefreshAll(ctx context.Context) {
	for _, slug := range m.order {
		if ctx.Err() != nil {
			return
		}
		// o erro já foi registrado em Refresh
		_, _ = m.Refresh(ctx, slug)
	}
}

// Refresh executa um ciclo de ingestão da empresa. Se a leitura falhar
// depois das tentativas, o catálogo fica vazio.
func (m *Monitor) Refresh(ctx context.Context, empresa string) (models.Ingestion, error) {
	e, ok := m.empresas[empresa]
	if !ok {
		return models.Ingestion{}, fmt.Errorf("%w: %s", ErrUnknownEmpresa, empresa)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	started := time.Now()
	log := m.log.With("empresa", empresa)

	rows, sourceName, fetchErr := m.fetch(ctx, e)

	idx := catalog.Empty()
	if fetchErr == nil {
		idx = catalog.Build(rows)
	}
	m.catalogs.Store(empresa).Swap(idx)

	ing := models.Ingestion{
		ID:           idx.ID(),
		Empresa:      empresa,
		Source:       sourceName,
		StartedAt:    started,
		FinishedAt:   time.Now(),
		RowCount:     len(rows),
		ProductCount: idx.Len(),
		Status:       models.IngestionSuccess,
	}

	status := observability.StatusSuccess
	if fetchErr != nil {
		ing.Status = models.IngestionFailure
		ing.Error = fetchErr.Error()
		status = observability.StatusFailure
		log.Error("Erro ao atualizar catálogo, catálogo esvaziado", "erro", fetchErr)
	} else {
		log.Info("Catálogo atualizado", "produtos", idx.Len(), "duracao", ing.Duration())
	}

	observability.ObserveIngestion(empresa, status, ing.Duration())
	observability.SetCatalogSize(empresa, countLabels(idx))

	m.record(ctx, log, ing, rows)

	return ing, fetchErr
}

func (m *Monitor) fetch(ctx context.Context, e config.Empresa) ([]models.RawRow, string, error) {
	source := m.sources.FindSource(e.Source())
	if source == nil {
		return nil, "", fmt.Errorf("%w: %s", scraper.ErrNoSource, e.Source())
	}

	rows, err := scraper.FetchWithRetry(ctx, source, e.Source(), m.retry, m.log)
	return rows, source.Name(), err
}

func (m *Monitor) record(ctx context.Context, log *logger.Logger, ing models.Ingestion, rows []models.RawRow) {
	if m.store == nil {
		return
	}

	// o histórico não deve depender do contexto do pedido que disparou o ciclo
	ctx = context.WithoutCancel(ctx)

	if err := m.store.RecordIngestion(ctx, ing, rows); err != nil {
		log.Error("Erro ao salvar ingestão", "erro", err)
		return
	}

	if removed, err := m.store.PruneIngestions(ctx, ing.Empresa, m.keep); err != nil {
		log.Warn("Erro ao limpar ingestões antigas", "erro", err)
	} else if removed > 0 {
		log.Debug("Ingestões antigas removidas", "quantidade", removed)
	}
}

// Restore carrega o último ciclo bem-sucedido salvo de cada empresa
func (m *Monitor) Restore(ctx context.Context) {
	if m.store == nil {
		return
	}

	for _, slug := range m.order {
		id, rows, err := m.store.LastSuccessfulRows(ctx, slug)
		if err != nil {
			m.log.Debug("Nenhum catálogo salvo para restaurar", "empresa", slug, "erro", err)
			continue
		}

		idx := catalog.Build(rows)
		m.catalogs.Store(slug).Swap(idx)
		observability.SetCatalogSize(slug, countLabels(idx))
		m.log.Info("Catálogo restaurado", "empresa", slug, "ingestao", id, "produtos", idx.Len())
	}
}

func countLabels(idx *catalog.Index) map[string]int {
	counts := make(map[string]int)
	for c, n := range idx.CountByCategory() {
		counts[string(c)] = n
	}
	return counts
}
