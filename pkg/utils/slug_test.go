package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mercadito/pkg/errors"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed Input  ", "trimmed-input"},
		{"Rock & Roll!", "rock-roll"},
		{"Multiple   Spaces   Here", "multiple-spaces-here"},
		{"already-slugged", "already-slugged"},
		{"--edge--", "edge"},
		{"MiXeD CaSe 123", "mixed-case-123"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, GenerateSlug(tc.input), "input: %q", tc.input)
	}
}

func TestIsSlugUnique(t *testing.T) {
	entries := []SlugEntry{
		{ID: "1", Slug: "phones"},
		{ID: "2", Slug: "laptops"},
	}

	assert.True(t, IsSlugUnique("tablets", entries, ""))
	assert.False(t, IsSlugUnique("phones", entries, ""))
	assert.True(t, IsSlugUnique("phones", entries, "1"), "a record keeping its own slug is not a conflict")
	assert.False(t, IsSlugUnique("phones", entries, "2"))
}

func TestCheckSlug(t *testing.T) {
	entries := []SlugEntry{
		{ID: "1", Slug: "phones"},
	}

	slug, err := CheckSlug("Smart Phones", entries, "")
	assert.NoError(t, err)
	assert.Equal(t, "smart-phones", slug)

	_, err = CheckSlug("Phones", entries, "")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Slug 'phones' already exists")
}
