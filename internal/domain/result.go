package domain

// ScoredResult is one matched offer line for a search query.
// Results are derived fresh on every search and never cached across
// queries, since raw lists can change between calls.
type ScoredResult struct {
	SupplierName string  `json:"supplierName"`
	OfferText    string  `json:"offerText"`
	Price        int     `json:"price"` // 0 means "no price detected" (valid, not an error)
	Score        float64 `json:"score"` // 0-100
	BestPrice    bool    `json:"bestPrice"`
}

// SearchRequest represents a price list search request
type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	SortMode string `json:"sortMode,omitempty"` // "price" (default) or "score"
}

// ExpandRequest carries a raw price list block for line expansion
type ExpandRequest struct {
	RawText string `json:"rawText"`
}

// PriceRequest carries a single offer line for price extraction
type PriceRequest struct {
	Line string `json:"line" binding:"required"`
}
