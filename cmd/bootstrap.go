package cmd

import (
	"context"
	"errors"
	"fmt"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
)

// SeedUsers registers the configured users. Names already taken are
// skipped.
func (c *CompositionRoot) SeedUsers(ctx context.Context) error {
	factory := c.CreatePolicyFactory()
	for _, u := range c.config.SeedUsers {
		_, err := factory.Register(ctx, u.Role, u.Name, u.Password, u.Email)
		if errors.Is(err, errs.ErrStateConflict) {
			c.logger.WarnContext(ctx, "Seed user already exists", "name", u.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Name, err)
		}
	}
	return nil
}

// SeedCatalog loads the products of the last snapshot into the catalog
// under fresh ids and returns how many were added.
func (c *CompositionRoot) SeedCatalog(ctx context.Context, snapshots ports.SnapshotStore) (int, error) {
	seeds, err := snapshots.LoadProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}
	if len(seeds) == 0 {
		return 0, nil
	}

	cmd, err := commands.NewSeedCatalogCommand(seeds)
	if err != nil {
		return 0, err
	}
	if err = c.CreateSeedCatalogCommandHandler().Handle(ctx, cmd); err != nil {
		return 0, err
	}
	return len(seeds), nil
}
