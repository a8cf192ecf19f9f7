package snapshotrepo

import (
	"context"
	"fmt"

	"quickcart/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements ports.SnapshotStore using GORM.
type GormSnapshotRepository struct {
	db *gorm.DB
}

var _ ports.SnapshotStore = (*GormSnapshotRepository)(nil)

func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Migrate creates or updates the snapshot tables.
func (r *GormSnapshotRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&ProductDTO{}, &OrderDTO{}, &OrderItemDTO{})
}

// Save replaces the stored snapshot in one transaction.
func (r *GormSnapshotRepository) Save(ctx context.Context, snapshot ports.Snapshot) error {
	products, orders := fromSnapshot(snapshot)

	items := make([]OrderItemDTO, 0)
	for _, o := range orders {
		items = append(items, o.Items...)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&OrderItemDTO{}, &OrderDTO{}, &ProductDTO{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear snapshot: %w", err)
			}
		}

		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("save products: %w", err)
			}
		}
		if len(orders) > 0 {
			if err := tx.Omit(clause.Associations).Create(&orders).Error; err != nil {
				return fmt.Errorf("save orders: %w", err)
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("save order items: %w", err)
			}
		}
		return nil
	})
}

// LoadProducts returns the stored catalog in snapshot order.
func (r *GormSnapshotRepository) LoadProducts(ctx context.Context) ([]ports.ProductSeed, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	seeds := make([]ports.ProductSeed, 0, len(dtos))
	for _, dto := range dtos {
		seed, err := dto.toSeed()
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
