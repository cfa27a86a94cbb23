package normalize

import (
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
)

// Deduplicate returns the unique values of names in first-seen order.
func Deduplicate[T comparable](names []T) []T {
	out := make([]T, 0, len(names))
	for i, n := range names {
		seen := false
		for _, prev := range names[:i] {
			if prev == n {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, n)
		}
	}
	return out
}

// Intersect returns, in a's order, every value of a that also occurs in b.
func Intersect[T comparable](a, b []T) []T {
	var out []T
	for _, v := range a {
		for _, w := range b {
			if v == w {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// Names builds a DependencySet from raw names. Blank entries are dropped.
func Names(raw []string) models.DependencySet {
	names := make([]models.DependencyName, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		names = append(names, models.DependencyName(String(r)))
	}
	return models.DependencySet(Deduplicate(names))
}

// Paths normalizes raw module paths, skipping empty ones.
func Paths(raw []string) []models.ModulePath {
	paths := make([]models.ModulePath, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			continue
		}
		paths = append(paths, models.ModulePath(String(r)))
	}
	return paths
}
