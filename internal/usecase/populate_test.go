package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/pkg/errors"
)

func TestParseRelations(t *testing.T) {
	relations, err := ParseRelations("", ProductRelations)
	require.NoError(t, err)
	assert.Nil(t, relations)

	relations, err = ParseRelations("categories", ProductRelations)
	require.NoError(t, err)
	assert.Equal(t, []Relation{RelationCategories}, relations)

	relations, err = ParseRelations("categories, stores ,questions", ProductRelations)
	require.NoError(t, err)
	assert.Equal(t, []Relation{RelationCategories, RelationStores, RelationQuestions}, relations)
}

func TestParseRelationsRejectsUnknownNames(t *testing.T) {
	_, err := ParseRelations("categories,owners", ProductRelations)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Invalid populate option 'owners'")

	// Valid name, wrong entity.
	_, err = ParseRelations("users", ProductRelations)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
