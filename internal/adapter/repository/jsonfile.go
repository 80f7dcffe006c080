package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"mercadito/pkg/errors"
	"mercadito/pkg/logger"
)

// collection mirrors one JSON array file in memory. A single mutex serializes
// all access, and every save rewrites the whole file through a temp-file
// rename so a crash mid-write cannot truncate the backing data.
type collection[T any] struct {
	mu    sync.RWMutex
	path  string
	items []T
}

// openCollection loads the backing file. A missing or unreadable file leaves
// the collection empty instead of failing startup.
func openCollection[T any](path string) *collection[T] {
	c := &collection[T]{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not read %s, starting with an empty collection: %v", path, err)
		return c
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		logger.Warn("Could not parse %s, starting with an empty collection: %v", path, err)
		c.items = nil
	}

	return c
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// mutate applies fn to a copy of the items, persists the result, and only
// then swaps it in. A failed persist leaves memory and disk unchanged.
func (c *collection[T]) mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(slices.Clone(c.items))
	if err != nil {
		return err
	}

	if err := c.persist(next); err != nil {
		return err
	}

	c.items = next
	return nil
}

func (c *collection[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Internal("Failed to encode collection", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*")
	if err != nil {
		return errors.Internal("Failed to persist data to file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Internal("Failed to persist data to file", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Internal("Failed to persist data to file", err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Internal("Failed to persist data to file", err)
	}

	return nil
}
