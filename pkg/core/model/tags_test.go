package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingCount(t *testing.T) {
	tests := []struct {
		name      string
		required  Tags
		available Tags
		expected  int
	}{
		{"nothing required", nil, NewTags("a"), 0},
		{"nothing available", NewTags("a", "b"), nil, 2},
		{"one missing", NewTags("a", "b"), NewTags("a"), 1},
		{"all present", NewTags("a", "b"), NewTags("a", "b", "c"), 0},
		{"duplicates collapse", NewTags("a", "a", "b"), NewTags("c"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MissingCount(tt.required, tt.available))
		})
	}
}

func TestOverlappingCount(t *testing.T) {
	tests := []struct {
		name     string
		a        Tags
		b        Tags
		expected int
	}{
		{"either empty", nil, NewTags("a"), 0},
		{"disjoint", NewTags("a"), NewTags("b"), 0},
		{"partial", NewTags("a", "b", "c"), NewTags("b", "c", "d"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverlappingCount(tt.a, tt.b))
			assert.Equal(t, tt.expected, OverlappingCount(tt.b, tt.a))
		})
	}
}

func TestTags_SortedViews(t *testing.T) {
	a := NewTags("c", "a", "b")
	b := NewTags("b", "d", "c")

	assert.Equal(t, []string{"a", "b", "c"}, a.Sorted())
	assert.Equal(t, []string{"b", "c"}, a.Intersection(b))
	assert.Equal(t, []string{"a"}, a.Difference(b))
	assert.Equal(t, []string{"a", "b", "c", "d"}, Union(a, b).Sorted())

	var empty Tags
	assert.Empty(t, empty.Sorted())
	assert.Empty(t, a.Intersection(empty))
	assert.Equal(t, []string{"a", "b", "c"}, a.Difference(empty))
}
