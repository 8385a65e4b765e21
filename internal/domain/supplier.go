package domain

// Supplier represents one supplier and their pasted price list.
// RawListText is an opaque block of free-form text (spreadsheet exports,
// chat copy-paste, mixed formats); the engine only ever reads it.
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RawListText string `json:"rawListText"`
	LastUpdated string `json:"lastUpdated,omitempty"` // display string, set on save
}

// SupplierInput is the payload for creating or updating a supplier.
type SupplierInput struct {
	Name        string `json:"name" binding:"required"`
	RawListText string `json:"rawListText"`
}
