package display

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice formata no padrão es-AR: milhar com ponto, decimal com vírgula
// e até duas casas. Texto não numérico volta como veio.
func FormatPrice(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}

	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole := d.Truncate(0)
	out := sign + groupThousands(whole.String())

	frac := d.Sub(whole)
	if !frac.IsZero() {
		digits := strings.TrimRight(frac.StringFixed(2)[2:], "0")
		out += "," + digits
	}

	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
