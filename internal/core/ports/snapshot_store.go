package ports

import (
	"context"
	"time"

	"quickcart/internal/core/domain/model/kernel"
)

// Snapshot is the external view of the catalog and the ledger.
type Snapshot struct {
	Products []ProductSnapshot
	Orders   []OrderSnapshot
}

type ProductSnapshot struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Stock    int
	Category string
}

// OrderSnapshot names the customer and rider by display name. Rider is
// "Unassigned" until an order is accepted.
type OrderSnapshot struct {
	ID        kernel.UUID
	Customer  string
	Rider     string
	Items     []OrderItemSnapshot
	Status    string
	Total     kernel.Money
	CreatedAt time.Time
}

type OrderItemSnapshot struct {
	Name     string
	Quantity int
}

// ProductSeed is a catalog entry read back from a snapshot. Ids are not
// restored.
type ProductSeed struct {
	Name     string
	Price    kernel.Money
	Stock    int
	Category string
}

// SnapshotStore persists snapshots. Orders are written but never read back.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot Snapshot) error

	// LoadProducts returns the products of the last saved snapshot, or none
	// when nothing was saved yet.
	LoadProducts(ctx context.Context) ([]ProductSeed, error)
}
