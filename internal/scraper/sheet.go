package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"catalogo-bot/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// SheetHTMLSource lê a página "publicar na web" do Google Sheets
type SheetHTMLSource struct {
	client *http.Client
}

// NewSheetHTMLSource cria a fonte HTML
func NewSheetHTMLSource(client *http.Client) *SheetHTMLSource {
	return &SheetHTMLSource{client: client}
}

func (s *SheetHTMLSource) Name() string { return "sheet-html" }

// CanHandle aceita qualquer endereço http; é a última fonte do registro
func (s *SheetHTMLSource) CanHandle(url string) bool {
	return isHTTP(url)
}

// FetchRows baixa a página e extrai as linhas da primeira tabela
func (s *SheetHTMLSource) FetchRows(ctx context.Context, url string) ([]models.RawRow, error) {
	body, err := get(ctx, s.client, url, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ParseSheetHTML(body)
}

// ParseSheetHTML extrai as linhas de uma tabela HTML. Na página publicada a
// tabela tem a classe "waffle", a primeira linha traz as letras das colunas
// em <th> e cada linha começa com o número dela, também em <th>; só as
// células <td> interessam.
func ParseSheetHTML(r io.Reader) ([]models.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler HTML: %w", err)
	}

	table := doc.Find("table.waffle").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var records [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var record []string
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			record = append(record, strings.TrimSpace(td.Text()))
		})
		if len(record) > 0 {
			records = append(records, record)
		}
	})

	header, data, err := splitHeader(records)
	if err != nil {
		return nil, err
	}

	return BuildRows(header, data)
}
