package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	columnGap    = "  "
	ellipsis     = "…"
	minColWidth  = 3
	defaultWidth = 24
)

// Table monta uma tabela em texto monoespaçado, alinhada pela largura
// visível dos caracteres (acentos e emoji incluídos).
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int
}

// NewTable cria uma tabela com os cabeçalhos
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, maxWidth: defaultWidth}
}

// MaxCellWidth limita a largura das células; o excesso vira "…"
func (t *Table) MaxCellWidth(width int) *Table {
	if width >= minColWidth {
		t.maxWidth = width
	}
	return t
}

// AddRow adiciona uma linha; células a mais são ignoradas
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := 0; i < len(row) && i < len(cells); i++ {
		row[i] = runewidth.Truncate(cells[i], t.maxWidth, ellipsis)
	}
	t.rows = append(t.rows, row)
}

// Rows é a quantidade de linhas sem contar o cabeçalho
func (t *Table) Rows() int {
	return len(t.rows)
}

func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = max(minColWidth, runewidth.StringWidth(h))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeLine(&sb, t.headers, widths)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(&sb, sep, widths)

	for _, row := range t.rows {
		writeLine(&sb, row, widths)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeLine(sb *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for i, cell := range cells {
		if i > 0 {
			line.WriteString(columnGap)
		}
		line.WriteString(cell)
		if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteByte('\n')
}
