package usecase

import (
	"context"

	"mercadito/pkg/errors"
)

// mustExist resolves a foreign key against its owning collection. Any lookup
// failure or missing record surfaces as NotFound labeled with the entity
// name. This is the only referential integrity enforcement in the system;
// nothing else stops a dangling reference from being persisted.
func mustExist[T any](ctx context.Context, lookup func(context.Context, string) (*T, error), id, label string) (*T, error) {
	record, err := lookup(ctx, id)
	if err != nil || record == nil {
		return nil, errors.NotFound(label, err)
	}
	return record, nil
}
