package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"catalogo-bot/internal/models"
)

var (
	ErrNoSource            = errors.New("nenhuma fonte sabe ler esta URL")
	ErrUnexpectedStatus    = errors.New("status inesperado")
	ErrNoTable             = errors.New("tabela não encontrada na página")
	ErrNoHeader            = errors.New("cabeçalho não encontrado")
	ErrNoRecognizedColumns = errors.New("nenhuma coluna reconhecida no cabeçalho")
)

// Source define a interface para as fontes de linhas da planilha
type Source interface {
	Name() string
	CanHandle(url string) bool
	FetchRows(ctx context.Context, url string) ([]models.RawRow, error)
}

// Registry mantém as fontes disponíveis, na ordem de preferência
type Registry struct {
	sources []Source
}

// NewRegistry cria o registro padrão: arquivo local, CSV publicado e HTML publicado
func NewRegistry(timeout time.Duration) *Registry {
	client := &http.Client{Timeout: timeout}
	return NewRegistryWith(
		NewFileSource(),
		NewCSVSource(client),
		NewSheetHTMLSource(client),
	)
}

// NewRegistryWith cria um registro com fontes escolhidas
func NewRegistryWith(sources ...Source) *Registry {
	return &Registry{sources: sources}
}

// FindSource encontra a fonte apropriada para uma URL
func (r *Registry) FindSource(url string) Source {
	for _, source := range r.sources {
		if source.CanHandle(url) {
			return source
		}
	}
	return nil
}

// Fetch busca as linhas usando a primeira fonte que aceita a URL
func (r *Registry) Fetch(ctx context.Context, url string) ([]models.RawRow, error) {
	source := r.FindSource(url)
	if source == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, url)
	}
	return source.FetchRows(ctx, url)
}

func isHTTP(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// get faz o GET com cabeçalhos de navegador e devolve o corpo aberto
func get(ctx context.Context, client *http.Client, url, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "es-AR,es;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp.Body, nil
}
