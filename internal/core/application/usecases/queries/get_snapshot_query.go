package queries

import (
	"errors"

	"quickcart/internal/pkg/guard"
)

var ErrGetSnapshotQueryIsNotConstructed = errors.New(
	"GetSnapshotQuery must be created via NewGetSnapshotQuery constructor",
)

// GetSnapshotQuery builds the external snapshot of catalog and ledger used
// by the snapshot stores and the admin report.
type GetSnapshotQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSnapshotQuery() GetSnapshotQuery {
	return GetSnapshotQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetSnapshotQueryIsNotConstructed)
}
