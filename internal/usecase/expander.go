package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Matches a storage size token at the start of a line, e.g. "128GB ..." or "1 TB ..."
	storagePrefixRegex = regexp.MustCompile(`(?i)^\s*\d+\s*(?:gb|tb)\b`)

	// Matches a currency marker anywhere in a line ($, u$s, US$, USD)
	currencyMarkerRegex = regexp.MustCompile(`(?i)\$|\busd\b`)

	// Matches a separator-grouped number like "350.000" or "1,250,000"
	groupedNumberRegex = regexp.MustCompile(`\b\d{1,3}(?:[.,]\d{3})+\b`)

	// Matches any run of 3+ consecutive digits
	digitRunRegex = regexp.MustCompile(`\d{3,}`)

	// Matches the first parenthesized group in a spec line, e.g. "(Negro-Azul)"
	parentheticalRegex = regexp.MustCompile(`\(([^)]*)\)`)

	// Multiple spaces cleanup
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// titleMarkers is the fixed vocabulary of brand and category tokens that
// identify a line as a product title. Suppliers paste lists for phones,
// tablets and laptops, so the vocabulary covers those families.
var titleMarkers = []string{
	"iphone", "ipad", "macbook", "apple",
	"samsung", "galaxy", "xiaomi", "redmi", "poco",
	"motorola", "moto", "infinix", "tecno", "honor",
	"realme", "oppo", "huawei", "oneplus",
	"notebook", "tablet", "celular",
}

// decorativeGlyphs are the symbol characters suppliers decorate title
// lines with. They are stripped before the title is stored as context.
var decorativeGlyphs = map[rune]bool{
	'✅': true, '✔': true, '☑': true, '❌': true, '❗': true, '‼': true,
	'🔥': true, '📱': true, '💻': true, '⌚': true, '🎧': true,
	'✨': true, '⭐': true, '🌟': true, '💥': true, '🎉': true, '🚀': true,
	'👉': true, '👇': true, '🔝': true, '💣': true, '💯': true,
	'•': true, '▪': true, '►': true, '➡': true, '★': true, '☆': true,
	'*': true, '~': true, '_': true, '|': true,
	'\ufe0f': true, // emoji variation selector left behind by the glyphs above
}

// ExpandLines turns a supplier's raw pasted text into a flat list of
// self-contained offer lines, one per concrete product configuration.
//
// It is a single sequential pass carrying one piece of state: the
// current title. Title lines (brand marker, no complete spec) update
// that context without emitting anything; spec lines ("128GB ... $...")
// are combined with the active title; complete priced lines are emitted
// verbatim and reset the context; everything else (bare color names,
// commentary) is dropped. Pure function of its input - the same text
// always yields the same sequence.
func ExpandLines(rawText string) []string {
	var out []string
	currentTitle := ""

	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case isTitleLine(line):
			currentTitle = cleanTitle(line)

		case isSpecLine(line):
			if currentTitle != "" {
				// A title applies to every spec line that follows it
				out = append(out, expandVariants(currentTitle, line)...)
			} else {
				out = append(out, line)
			}

		case hasPriceSignal(line):
			// Self-sufficient description; the previous title no longer applies
			out = append(out, line)
			currentTitle = ""
		}
	}

	return out
}

// isTitleLine reports whether a line introduces a product title: it
// names a brand or category but does not already carry a complete
// storage+price spec of its own.
func isTitleLine(line string) bool {
	if !containsTitleMarker(line) {
		return false
	}
	hasStorage := storageTokenRegex.MatchString(line)
	hasCurrency := currencyMarkerRegex.MatchString(line)
	return !(hasStorage && hasCurrency)
}

// isSpecLine reports whether a line is a variant spec: it starts with a
// storage size and eventually carries a price marker.
func isSpecLine(line string) bool {
	if !storagePrefixRegex.MatchString(line) {
		return false
	}
	return currencyMarkerRegex.MatchString(line) || groupedNumberRegex.MatchString(line)
}

// hasPriceSignal reports whether a line carries any currency or numeric
// context worth attempting a price extraction on. Lines without it are
// dropped during expansion.
func hasPriceSignal(line string) bool {
	return currencyMarkerRegex.MatchString(line) || digitRunRegex.MatchString(line)
}

// containsTitleMarker checks the line against the brand/category vocabulary
func containsTitleMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range titleMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// cleanTitle strips decorative glyphs from a title line and collapses
// the whitespace left behind.
func cleanTitle(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if decorativeGlyphs[r] {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	cleaned := multiSpaceRegex.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(cleaned)
}

// expandVariants combines a title with a spec line, emitting one offer
// line per color variant when the spec carries a multi-color group like
// "(Negro-Azul)". A group with fewer than two variants leaves the line
// untouched.
func expandVariants(title, spec string) []string {
	loc := parentheticalRegex.FindStringSubmatchIndex(spec)
	if loc == nil {
		return []string{joinOfferLine(title, spec)}
	}

	group := spec[loc[2]:loc[3]]
	variants := splitVariants(group)
	if len(variants) < 2 {
		return []string{joinOfferLine(title, spec)}
	}

	base := strings.TrimSpace(multiSpaceRegex.ReplaceAllString(spec[:loc[0]]+spec[loc[1]:], " "))
	out := make([]string, 0, len(variants))
	for _, variant := range variants {
		out = append(out, joinOfferLine(title, base)+" ("+variant+")")
	}
	return out
}

// splitVariants breaks a parenthesized group into its non-empty
// candidate tokens, splitting on the separators suppliers actually use.
func splitVariants(group string) []string {
	fields := strings.FieldsFunc(group, func(r rune) bool {
		return r == '-' || r == ',' || r == '/'
	})

	var variants []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			variants = append(variants, f)
		}
	}
	return variants
}

func joinOfferLine(title, spec string) string {
	return title + " " + strings.TrimSpace(spec)
}
