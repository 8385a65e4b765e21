package usecase

import (
	"log"
	"regexp"
	"strings"
)

// Scoring constants
const (
	defaultMinScoreThreshold = 60.0 // minimum score for a result to be admitted
	verbatimMatchBonus       = 2.0  // full query appears verbatim in the offer line
	maxScore                 = 100.0
)

// Package-level compiled regex patterns for performance
var (
	// Matches a storage size token like "128GB" or "256 gb"
	storageTokenRegex = regexp.MustCompile(`(?i)\b(\d+)\s*gb\b`)

	// Matches a phone brand followed by a model/generation number, e.g.
	// "iphone 13", "galaxy s21", "redmi 12", "moto g84". The brand set is
	// fixed: these are the tokens where a trailing number distinguishes
	// otherwise identical products.
	modelNumberRegex = regexp.MustCompile(`(?i)\b(iphone|galaxy|redmi|moto|poco|note)\s*([a-z]?\d+)\b`)
)

// MatchConfig holds configuration for the matcher
type MatchConfig struct {
	MinScoreThreshold  float64
	EnableDebugLogging bool
}

// Matcher scores offer lines against a free-text user query. The score
// model is deterministic and rule-based: suppliers' lists are
// adversarial in format but small in volume, so exact gating plus token
// overlap beats anything statistical here.
type Matcher struct {
	minScoreThreshold  float64
	enableDebugLogging bool
}

// NewMatcher creates a new matcher with the given configuration
func NewMatcher(config MatchConfig) *Matcher {
	threshold := config.MinScoreThreshold
	if threshold <= 0 {
		threshold = defaultMinScoreThreshold
	}

	return &Matcher{
		minScoreThreshold:  threshold,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MinScoreThreshold returns the configured admission threshold
func (m *Matcher) MinScoreThreshold() float64 {
	return m.minScoreThreshold
}

// Score computes the match score (0-100) of one offer line against the
// query. Hard constraints run first and short-circuit to 0; only then
// does token scoring apply.
func (m *Matcher) Score(line, query string) float64 {
	lineLower := strings.ToLower(line)
	queryLower := strings.ToLower(query)

	if !satisfiesHardConstraints(lineLower, queryLower) {
		if m.enableDebugLogging {
			log.Printf("[MATCH] %q vs %q: hard constraint violated", query, line)
		}
		return 0
	}

	score := tokenScore(lineLower, queryLower)
	if m.enableDebugLogging {
		log.Printf("[MATCH] %q vs %q: score %.1f", query, line, score)
	}
	return score
}

// satisfiesHardConstraints checks the two attributes that make two
// phones non-substitutable. A query naming "iphone 13" must never match
// an "iphone 11" line, and an explicit "128GB" must never match a
// "256GB" line, no matter how much the remaining tokens overlap.
// Both inputs are expected lower-cased.
func satisfiesHardConstraints(lineLower, queryLower string) bool {
	// Explicit model number: every brand+number pair in the query must
	// appear in the line with the same number.
	modelNumbers := make(map[string]bool)
	for _, match := range modelNumberRegex.FindAllStringSubmatch(queryLower, -1) {
		brand, model := match[1], match[2]
		modelNumbers[model] = true
		pairRegex := regexp.MustCompile(`\b` + regexp.QuoteMeta(brand) + `\s*` + regexp.QuoteMeta(model) + `\b`)
		if !pairRegex.MatchString(lineLower) {
			return false
		}
	}

	// Explicit storage size: an exact "<n>GB" in the query - or a bare
	// number that can only mean a storage size - requires the identical
	// "<n>GB" token in the line.
	for _, size := range queryStorageSizes(queryLower, modelNumbers) {
		sizeRegex := regexp.MustCompile(`\b` + size + `\s*gb\b`)
		if !sizeRegex.MatchString(lineLower) {
			return false
		}
	}

	return true
}

// canonicalStorageSizes are the capacities phones and tablets actually
// ship with. A bare query token from this set ("galaxy s21 128") is a
// storage spec even without the GB suffix.
var canonicalStorageSizes = map[string]bool{
	"16": true, "32": true, "64": true, "128": true,
	"256": true, "512": true, "1024": true,
}

// queryStorageSizes collects the storage sizes a query pins down, from
// explicit "<n>GB" tokens and from bare canonical-capacity numbers.
// Numbers already claimed as model generations ("iphone 16") are not
// storage sizes.
func queryStorageSizes(queryLower string, modelNumbers map[string]bool) []string {
	var sizes []string
	for _, match := range storageTokenRegex.FindAllStringSubmatch(queryLower, -1) {
		sizes = append(sizes, match[1])
	}
	for _, token := range strings.Fields(queryLower) {
		if isNumeric(token) && canonicalStorageSizes[token] && !modelNumbers[token] {
			sizes = append(sizes, token)
		}
	}
	return sizes
}

// tokenScore is the soft scoring phase: the fraction of query tokens
// satisfied by the line, as a percentage, plus a small bonus when the
// whole query appears verbatim. Purely numeric tokens count as
// satisfied without lookup - the dangerous numbers (model, storage) are
// already covered by the hard constraints.
// Both inputs are expected lower-cased.
func tokenScore(lineLower, queryLower string) float64 {
	tokens := strings.Fields(queryLower)
	if len(tokens) == 0 {
		return 0
	}

	satisfied := 0
	for _, token := range tokens {
		if isNumeric(token) || strings.Contains(lineLower, token) {
			satisfied++
		}
	}

	score := float64(satisfied) / float64(len(tokens)) * 100

	if strings.Contains(lineLower, queryLower) {
		score += verbatimMatchBonus
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
