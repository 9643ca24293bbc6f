package scraper

import (
	"strings"
	"unicode"

	"catalogo-bot/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// headerAliases liga o cabeçalho dobrado à chave canônica da linha
var headerAliases = map[string]string{
	"modelo":            models.KeyModel,
	"model":             models.KeyModel,
	"nombre":            models.KeyModel,
	"equipo":            models.KeyModel,
	"producto":          models.KeyModel,
	"capacidad":         models.KeyCapacity,
	"capacity":          models.KeyCapacity,
	"almacenamiento":    models.KeyCapacity,
	"gb":                models.KeyCapacity,
	"bateria":           models.KeyBattery,
	"battery":           models.KeyBattery,
	"salud_bateria":     models.KeyBattery,
	"condicion_bateria": models.KeyBattery,
	"estado":            models.KeyState,
	"condicion":         models.KeyState,
	"state":             models.KeyState,
	"color":             models.KeyColor,
	"imei":              models.KeyIMEI,
	"proveedor":         models.KeyProvider,
	"provider":          models.KeyProvider,
	"ubicacion":         models.KeyLocation,
	"location":          models.KeyLocation,
	"lugar":             models.KeyLocation,
	"video":             models.KeyVideo,
	"link_video":        models.KeyVideo,
	"venta_usd":         models.KeyPriceUSD,
	"precio_usd":        models.KeyPriceUSD,
	"venta_u_s":         models.KeyPriceUSD,
	"usd":               models.KeyPriceUSD,
	"venta_ars":         models.KeyPriceARS,
	"precio_ars":        models.KeyPriceARS,
	"venta_pesos":       models.KeyPriceARS,
	"pesos":             models.KeyPriceARS,
	"ars":               models.KeyPriceARS,
	"costo":             models.KeyCost,
	"cost":              models.KeyCost,
	"roi":               models.KeyROI,
}

// FoldHeader deixa o cabeçalho em minúsculas, sem acentos e com "_" no
// lugar de espaços e símbolos: "Venta USD" vira "venta_usd".
func FoldHeader(header string) string {
	// o transformer guarda estado, então é criado a cada chamada
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, header)
	if err != nil {
		folded = header
	}

	var sb strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return sb.String()
}

// CanonicalKey devolve a chave canônica de um cabeçalho da planilha
func CanonicalKey(header string) (string, bool) {
	key, ok := headerAliases[FoldHeader(header)]
	return key, ok
}

// BuildRows transforma cabeçalho e registros em linhas brutas.
// Colunas desconhecidas são ignoradas, as que faltam ficam vazias e linhas
// totalmente em branco são descartadas.
func BuildRows(header []string, records [][]string) ([]models.RawRow, error) {
	columns := make(map[int]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		key, ok := CanonicalKey(h)
		if !ok || taken[key] {
			continue
		}
		columns[i] = key
		taken[key] = true
	}

	if len(columns) == 0 {
		return nil, ErrNoRecognizedColumns
	}

	rows := make([]models.RawRow, 0, len(records))
	for _, record := range records {
		if isBlank(record) {
			continue
		}

		row := make(models.RawRow, len(models.RawKeys))
		for _, key := range models.RawKeys {
			row[key] = ""
		}
		for i, cell := range record {
			if key, ok := columns[i]; ok {
				row[key] = strings.TrimSpace(cell)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// splitHeader separa a primeira linha não vazia como cabeçalho
func splitHeader(records [][]string) ([]string, [][]string, error) {
	for i, record := range records {
		if !isBlank(record) {
			return record, records[i+1:], nil
		}
	}
	return nil, nil, ErrNoHeader
}
