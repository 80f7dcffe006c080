package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/internal/domain/entity"
	"mercadito/pkg/errors"
)

func TestCreateStoreDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	category := env.seedCategory(t, "Electronics")

	store, err := env.stores.CreateStore(ctx, CreateStoreInput{
		StoreCode:  "ST-0001",
		Name:       "Casa Tech",
		Categories: []string{category.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "casa-tech", store.Slug)
	assert.True(t, store.IsActive, "stores default to active")
	assert.False(t, store.IsVerified)
	assert.Nil(t, store.VerifiedAt)
	assert.Equal(t, []string{category.ID}, entity.RefIDs(store.Categories))
}

func TestCreateStoreUnknownCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.stores.CreateStore(ctx, CreateStoreInput{
		StoreCode:  "ST-0001",
		Name:       "Casa Tech",
		Categories: []string{"missing"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	stores, err := env.storeRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stores, "a rejected store must not be persisted")
}

func TestCreateStoreVerifiedStampsTimestamp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	verified := true
	store, err := env.stores.CreateStore(ctx, CreateStoreInput{
		StoreCode:  "ST-0001",
		Name:       "Casa Tech",
		IsVerified: &verified,
	})
	require.NoError(t, err)

	assert.True(t, store.IsVerified)
	assert.NotNil(t, store.VerifiedAt)
}

func TestUpdateStoreVerificationTransitions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	store := env.seedStore(t, "Casa Tech")
	require.Nil(t, store.VerifiedAt)

	verified := true
	updated, err := env.stores.UpdateStore(ctx, store.ID, UpdateStoreInput{IsVerified: &verified})
	require.NoError(t, err)
	require.NotNil(t, updated.VerifiedAt)
	firstStamp := *updated.VerifiedAt

	// Re-verifying keeps the original stamp.
	updated, err = env.stores.UpdateStore(ctx, store.ID, UpdateStoreInput{IsVerified: &verified})
	require.NoError(t, err)
	require.NotNil(t, updated.VerifiedAt)
	assert.Equal(t, firstStamp, *updated.VerifiedAt)

	unverified := false
	updated, err = env.stores.UpdateStore(ctx, store.ID, UpdateStoreInput{IsVerified: &unverified})
	require.NoError(t, err)
	assert.False(t, updated.IsVerified)
	assert.Nil(t, updated.VerifiedAt, "unverifying clears the stamp")
}

func TestUpdateStoreUntouchedVerificationKeepsStamp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	verified := true
	store, err := env.stores.CreateStore(ctx, CreateStoreInput{
		StoreCode:  "ST-0001",
		Name:       "Casa Tech",
		IsVerified: &verified,
	})
	require.NoError(t, err)
	require.NotNil(t, store.VerifiedAt)

	name := "Casa Tech Renovada"
	updated, err := env.stores.UpdateStore(ctx, store.ID, UpdateStoreInput{Name: &name})
	require.NoError(t, err)

	assert.True(t, updated.IsVerified)
	assert.NotNil(t, updated.VerifiedAt)
	assert.Equal(t, "casa-tech-renovada", updated.Slug, "name change re-derives the slug")
}

func TestStorePopulateCategories(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	category := env.seedCategory(t, "Electronics")
	store := env.seedStore(t, "Casa Tech", category.ID)

	plain, err := env.stores.GetStore(ctx, store.ID, nil)
	require.NoError(t, err)
	require.Len(t, plain.Categories, 1)
	assert.False(t, plain.Categories[0].IsResolved())

	populated, err := env.stores.GetStore(ctx, store.ID, []Relation{RelationCategories})
	require.NoError(t, err)
	require.Len(t, populated.Categories, 1)
	require.True(t, populated.Categories[0].IsResolved())
	assert.Equal(t, "Electronics", populated.Categories[0].Record.Name)

	// Population must not leak into the stored record.
	reloaded, err := env.storeRepo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Categories[0].IsResolved())
}

func TestDeleteStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	store := env.seedStore(t, "Casa Tech")

	message, err := env.stores.DeleteStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, `Store "Casa Tech" deleted successfully`, message)

	_, err = env.stores.GetStore(ctx, store.ID, nil)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
