package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRule is one extraction strategy: a pattern whose first capture
// group holds the candidate digits (possibly with thousand separators).
type priceRule struct {
	name    string
	pattern *regexp.Regexp
}

// priceRules is the ordered fallback list tried against an offer line.
// Rules never combine: the first one that yields a positive integer
// wins. Order matters - the local "u$s" dollar abbreviation must fire
// before the generic "$" rule, and both before the bare-digits fallback.
var priceRules = []priceRule{
	{"peso-dollar abbreviation", regexp.MustCompile(`(?i)u\$s?\s*:?\s*([\d.,]+)`)},
	{"currency sign", regexp.MustCompile(`\$\s*(\d+(?:[.,]\d{3})*)`)},
	{"grouped number", regexp.MustCompile(`\b(\d{1,3}(?:[.,]\d{3})+)\b`)},
	{"currency code", regexp.MustCompile(`(?i)\busd\s*:?\s*([\d.,]+)`)},
	{"us-dollar marker", regexp.MustCompile(`(?i)\bus\$\s*([\d.,]+)`)},
	{"bare digits", regexp.MustCompile(`(\d{3,})`)},
}

// separatorReplacer strips thousand separators from captured digits
var separatorReplacer = strings.NewReplacer(".", "", ",", "")

// ExtractPrice pulls a single integer monetary amount out of one offer
// line. It returns 0 when no rule yields a positive integer - a valid
// "no price detected" outcome, not an error: plenty of lines
// legitimately have none ("Sin precio, consultar").
func ExtractPrice(line string) int {
	for _, rule := range priceRules {
		m := rule.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		digits := separatorReplacer.Replace(m[1])
		value, err := strconv.Atoi(digits)
		if err != nil || value <= 0 {
			continue
		}
		return value
	}

	return 0
}
