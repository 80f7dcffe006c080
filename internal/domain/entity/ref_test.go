package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefMarshalBareID(t *testing.T) {
	ref := NewRef[Category]("cat-1")

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.Equal(t, `"cat-1"`, string(data))
}

func TestRefMarshalResolved(t *testing.T) {
	category := &Category{ID: "cat-1", Name: "Phones", Slug: "phones"}
	ref := Resolved("cat-1", category)

	data, err := json.Marshal(ref)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "cat-1", decoded["id"])
	assert.Equal(t, "Phones", decoded["name"])
}

func TestRefUnmarshalString(t *testing.T) {
	var ref Ref[Category]
	require.NoError(t, json.Unmarshal([]byte(`"cat-1"`), &ref))

	assert.Equal(t, "cat-1", ref.ID)
	assert.False(t, ref.IsResolved())
}

func TestRefUnmarshalObject(t *testing.T) {
	var ref Ref[Category]
	require.NoError(t, json.Unmarshal([]byte(`{"id":"cat-1","name":"Phones"}`), &ref))

	assert.Equal(t, "cat-1", ref.ID)
	require.True(t, ref.IsResolved())
	assert.Equal(t, "Phones", ref.Record.Name)
}

func TestRefRoundTripInsideRecord(t *testing.T) {
	product := Product{
		ID:        "prod-1",
		Title:     "Widget",
		Category:  NewRef[Category]("cat-1"),
		Store:     NewRef[Store]("store-1"),
		Questions: []Ref[Question]{NewRef[Question]("q-1"), NewRef[Question]("q-2")},
	}

	data, err := json.Marshal(product)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "cat-1", decoded.Category.ID)
	assert.False(t, decoded.Category.IsResolved())
	assert.Equal(t, []string{"q-1", "q-2"}, RefIDs(decoded.Questions))
}
