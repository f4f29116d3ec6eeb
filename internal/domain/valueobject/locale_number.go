// Package valueobject contains domain value objects for the budget dashboard system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// ParseLocaleNumber parses a numeric cell written in the Indonesian spreadsheet
// locale: "." as thousands separator and "," as decimal separator. The source
// files use a bare "-" as a placeholder for "no value", so "-" and the empty
// string both parse to zero, and wrap negative amounts in parentheses in the
// accounting convention, so "(1.000,00)" parses to -1000. Anything else that
// does not survive the separator substitution is a hard error; the sources
// conflate only "-" with zero, not arbitrary garbage.
func ParseLocaleNumber(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		negative = true
		trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}

	normalized := strings.ReplaceAll(trimmed, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidNumberFormat,
			"invalid numeric cell: "+s,
			domainerror.ErrInvalidNumberFormat,
		)
	}
	if negative {
		value = value.Neg()
	}
	return value, nil
}
