package usecase

import (
	"log"
	"strings"

	"github.com/priceboard/backend/internal/domain"
)

// SearchConfig holds configuration for the search service
type SearchConfig struct {
	MinScoreThreshold  float64
	EnableDebugLogging bool
}

// SearchService runs a query end to end: expand each supplier's raw
// list into offer lines, score every line, keep the ones above the
// threshold, attach an extracted price, and rank.
type SearchService struct {
	matcher            *Matcher
	enableDebugLogging bool
}

// NewSearchService creates a new search service with the given configuration
func NewSearchService(config SearchConfig) *SearchService {
	return &SearchService{
		matcher: NewMatcher(MatchConfig{
			MinScoreThreshold:  config.MinScoreThreshold,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Search matches a free-text query against every supplier's price list
// and returns the ranked results. Offer lines and scores are re-derived
// from the raw text on every call - raw lists can change between calls,
// so nothing is cached across queries. An empty query yields an empty
// result set.
func (s *SearchService) Search(query string, suppliers []domain.Supplier, mode SortMode) []domain.ScoredResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []domain.ScoredResult
	for _, supplier := range suppliers {
		for _, line := range ExpandLines(supplier.RawListText) {
			score := s.matcher.Score(line, query)
			if score < s.matcher.MinScoreThreshold() {
				continue
			}

			results = append(results, domain.ScoredResult{
				SupplierName: supplier.Name,
				OfferText:    line,
				Price:        ExtractPrice(line),
				Score:        score,
			})
		}
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] %q over %d suppliers: %d results above threshold", query, len(suppliers), len(results))
	}

	return RankResults(results, mode)
}
