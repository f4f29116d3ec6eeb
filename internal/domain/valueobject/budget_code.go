package valueobject

import "regexp"

// Budget line codes are composite: a 6-digit program code, a controller digit
// group and a sequence group, dot-separated (e.g. "520111.5.001"). The SIMRS
// export embeds the code inside a longer free-text field, so both patterns
// search anywhere in the input.
var (
	budgetCodeParts = regexp.MustCompile(`(\d{6})\.(\d+)\.\d+`)
	budgetCodeFull  = regexp.MustCompile(`\d{6}\.\d+\.\d+`)
)

// ParseBudgetCode extracts the program code and controller code from a
// composite budget code. It reports ok=false when the pattern does not match;
// that is not an error, the row is simply unattributable.
func ParseBudgetCode(code string) (programCode, controllerCode string, ok bool) {
	m := budgetCodeParts.FindStringSubmatch(code)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ExtractBudgetCode returns the first composite budget code embedded in free
// text, or ok=false when none is present.
func ExtractBudgetCode(text string) (string, bool) {
	m := budgetCodeFull.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
