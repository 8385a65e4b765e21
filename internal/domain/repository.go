package domain

import "context"

// SupplierRepository defines the interface for supplier persistence.
// The dashboard keeps suppliers in a hosted document store; the engine
// itself never touches storage, it only reads the raw text handed to it.
type SupplierRepository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	Create(ctx context.Context, input SupplierInput) (*Supplier, error)
	Update(ctx context.Context, id string, input SupplierInput) (*Supplier, error)
	Delete(ctx context.Context, id string) error
}
