package usecase

import (
	"sort"

	"github.com/priceboard/backend/internal/domain"
)

// SortMode selects how search results are ordered
type SortMode string

const (
	// SortByPrice orders ascending by price, no-price entries last
	SortByPrice SortMode = "price"
	// SortByScore orders descending by match score
	SortByScore SortMode = "score"
)

// ParseSortMode validates a caller-supplied sort mode, defaulting to
// price ordering when none is given.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortByPrice, "":
		return SortByPrice, nil
	case SortByScore:
		return SortByScore, nil
	default:
		return "", domain.ErrInvalidSortMode
	}
}

// RankResults sorts scored results by the chosen criterion and flags
// every result sharing the minimum positive price. The input slice is
// not modified; the returned slice is a fresh copy.
func RankResults(results []domain.ScoredResult, mode SortMode) []domain.ScoredResult {
	ranked := make([]domain.ScoredResult, len(results))
	copy(ranked, results)

	switch mode {
	case SortByScore:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Score > ranked[j].Score
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			switch {
			case a.Price == 0 && b.Price == 0:
				// No-price entries tie-break on score
				return a.Score > b.Score
			case a.Price == 0:
				return false
			case b.Price == 0:
				return true
			default:
				return a.Price < b.Price
			}
		})
	}

	markBestPrice(ranked)
	return ranked
}

// markBestPrice flags every result carrying the lowest positive price.
// The sentinel 0 ("no price detected") never wins.
func markBestPrice(results []domain.ScoredResult) {
	best := 0
	for _, r := range results {
		if r.Price > 0 && (best == 0 || r.Price < best) {
			best = r.Price
		}
	}
	if best == 0 {
		return
	}

	for i := range results {
		if results[i].Price == best {
			results[i].BestPrice = true
		}
	}
}
