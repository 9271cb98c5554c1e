// Package dedup holds the run-scoped set of known profile URLs.
//
// A Set is seeded once from the store, only ever grows, and is not safe for
// concurrent use. Every key goes through util.NormalizeProfileURL on the way
// in, so seed-time and insert-time keys compare equal.
package dedup

import (
	"context"
	"fmt"

	"leadhunt-engine/internal/scrape/util"
)

type KeySource interface {
	ProfileURLs(ctx context.Context) ([]string, error)
}

type Set struct {
	keys map[string]struct{}
}

func New() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// SeedFrom builds a Set from every profile URL already in the store.
func SeedFrom(ctx context.Context, src KeySource) (*Set, error) {
	urls, err := src.ProfileURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored profile urls: %w", err)
	}
	s := New()
	s.Seed(urls)
	return s, nil
}

func (s *Set) Seed(keys []string) {
	for _, k := range keys {
		s.Add(k)
	}
}

func (s *Set) Contains(key string) bool {
	k := Key(key)
	if k == "" {
		return false
	}
	_, ok := s.keys[k]
	return ok
}

// Add inserts key and reports whether it was new. Empty keys are ignored.
func (s *Set) Add(key string) bool {
	k := Key(key)
	if k == "" {
		return false
	}
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

func (s *Set) Len() int { return len(s.keys) }

// Key is the normalized form used for membership.
func Key(raw string) string {
	return util.NormalizeProfileURL(raw, "")
}
