package model

import (
	"slices"

	"github.com/samber/lo"
)

// Tags is an unordered, duplicate-free set of free-form tags.
// A nil Tags value behaves as the empty set.
type Tags map[string]struct{}

// NewTags creates a tag set from the given tags, dropping duplicates
func NewTags(tags ...string) Tags {
	set := make(Tags, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Contains returns true if the tag is in the set
func (t Tags) Contains(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Len returns the number of tags in the set
func (t Tags) Len() int {
	return len(t)
}

// Sorted returns the tags in lexical order
func (t Tags) Sorted() []string {
	sorted := lo.Keys(t)
	slices.Sort(sorted)
	return sorted
}

// Intersection returns the sorted tags present in both sets
func (t Tags) Intersection(other Tags) []string {
	return lo.Filter(t.Sorted(), func(tag string, _ int) bool {
		return other.Contains(tag)
	})
}

// Difference returns the sorted tags of t that are not in other
func (t Tags) Difference(other Tags) []string {
	return lo.Filter(t.Sorted(), func(tag string, _ int) bool {
		return !other.Contains(tag)
	})
}

// Union returns a new set holding the tags of all given sets
func Union(sets ...Tags) Tags {
	union := make(Tags)
	for _, set := range sets {
		for tag := range set {
			union[tag] = struct{}{}
		}
	}
	return union
}

// MissingCount returns how many required tags are not available.
//   - 0 if nothing is required
//   - |required| if nothing is available
//   - |required \ available| otherwise
func MissingCount(required, available Tags) int {
	if len(required) == 0 {
		return 0
	}
	if len(available) == 0 {
		return len(required)
	}
	count := 0
	for tag := range required {
		if !available.Contains(tag) {
			count++
		}
	}
	return count
}

// OverlappingCount returns |a ∩ b|, which is 0 if either set is empty
func OverlappingCount(a, b Tags) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for tag := range a {
		if b.Contains(tag) {
			count++
		}
	}
	return count
}
