package commands

import (
	"errors"
	"fmt"

	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrSeedCatalogCommandIsNotConstructed = errors.New(
	"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
)

// SeedCatalogCommand loads products read from a snapshot at start-up.
// Every product gets a fresh id.
type SeedCatalogCommand struct {
	seeds []ports.ProductSeed

	guard guard.ConstructorGuard
}

func NewSeedCatalogCommand(seeds []ports.ProductSeed) (SeedCatalogCommand, error) {
	for i, seed := range seeds {
		if seed.Name == "" {
			return SeedCatalogCommand{}, errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].name", i))
		}
		if seed.Stock < 0 {
			return SeedCatalogCommand{}, errs.NewValueIsOutOfRangeError(fmt.Sprintf("products[%d].stock", i), seed.Stock, 0, "unbounded")
		}
	}

	return SeedCatalogCommand{
		seeds: append([]ports.ProductSeed(nil), seeds...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

func (c SeedCatalogCommand) Seeds() []ports.ProductSeed {
	return append([]ports.ProductSeed(nil), c.seeds...)
}
