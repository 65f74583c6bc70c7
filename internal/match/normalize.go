package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a column or field name for fuzzy comparison: case is
// folded and separators (space, underscore, hyphen, dot) are removed, so
// "Production Date", "production_date" and "productionDate" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.TrimSpace(s) {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
