package scraper

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"catalogo-bot/internal/models"
)

// CSVSource lê a exportação CSV publicada da planilha
type CSVSource struct {
	client *http.Client
}

// NewCSVSource cria a fonte CSV remota
func NewCSVSource(client *http.Client) *CSVSource {
	return &CSVSource{client: client}
}

func (s *CSVSource) Name() string { return "sheet-csv" }

// CanHandle aceita URLs http com output=csv, format=csv ou terminadas em .csv
func (s *CSVSource) CanHandle(url string) bool {
	if !isHTTP(url) {
		return false
	}
	lower := strings.ToLower(url)
	path := lower
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.Contains(lower, "output=csv") ||
		strings.Contains(lower, "format=csv") ||
		strings.HasSuffix(path, ".csv")
}

func (s *CSVSource) FetchRows(ctx context.Context, url string) ([]models.RawRow, error) {
	body, err := get(ctx, s.client, url, "text/csv,*/*;q=0.8")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ParseCSV(body)
}

// FileSource lê um CSV do disco, útil para testes e estoque offline
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) Name() string { return "file-csv" }

func (s *FileSource) CanHandle(path string) bool {
	return !isHTTP(path) && strings.HasSuffix(strings.ToLower(path), ".csv")
}

func (s *FileSource) FetchRows(ctx context.Context, path string) ([]models.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV lê um CSV com cabeçalho na primeira linha não vazia
func ParseCSV(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	header, data, err := splitHeader(records)
	if err != nil {
		return nil, err
	}

	// planilhas exportadas às vezes vêm com BOM
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return BuildRows(header, data)
}
