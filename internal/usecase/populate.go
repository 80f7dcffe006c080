package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"mercadito/internal/domain/entity"
	"mercadito/pkg/errors"
)

// Relation names a populate expansion a caller may request.
type Relation string

const (
	RelationCategories Relation = "categories"
	RelationStores     Relation = "stores"
	RelationProducts   Relation = "products"
	RelationQuestions  Relation = "questions"
	RelationUsers      Relation = "users"
)

// Per-entity whitelists. Unknown names are rejected at the request boundary;
// the populate helpers below assume their input already passed.
var (
	StoreRelations    = []Relation{RelationCategories}
	ProductRelations  = []Relation{RelationCategories, RelationStores, RelationQuestions}
	ReviewRelations   = []Relation{RelationUsers, RelationProducts}
	QuestionRelations = []Relation{RelationUsers}
)

// ParseRelations splits a comma-separated populate parameter and validates
// every name against the entity's whitelist.
func ParseRelations(raw string, allowed []Relation) ([]Relation, error) {
	if raw == "" {
		return nil, nil
	}

	var relations []Relation
	for _, part := range strings.Split(raw, ",") {
		name := Relation(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !slices.Contains(allowed, name) {
			return nil, errors.BadRequest(fmt.Sprintf("Invalid populate option '%s'", name), nil)
		}
		relations = append(relations, name)
	}

	return relations, nil
}

func hasRelation(relations []Relation, name Relation) bool {
	return slices.Contains(relations, name)
}

// resolveRef expands one reference through the owning collection's lookup.
// A dangling id surfaces whatever the lookup raises.
func resolveRef[T any](ctx context.Context, lookup func(context.Context, string) (*T, error), ref entity.Ref[T]) (entity.Ref[T], error) {
	if ref.IsResolved() {
		return ref, nil
	}

	record, err := lookup(ctx, ref.ID)
	if err != nil {
		return ref, err
	}

	return entity.Resolved(ref.ID, record), nil
}

// resolveRefs expands a reference list preserving its order.
func resolveRefs[T any](ctx context.Context, lookup func(context.Context, string) (*T, error), refs []entity.Ref[T]) ([]entity.Ref[T], error) {
	resolved := make([]entity.Ref[T], len(refs))
	for i, ref := range refs {
		expanded, err := resolveRef(ctx, lookup, ref)
		if err != nil {
			return nil, err
		}
		resolved[i] = expanded
	}
	return resolved, nil
}
