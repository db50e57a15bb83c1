package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedSetMembership(t *testing.T) {
	s := NewCheckedSet([]string{"milk", "onion"})
	assert.True(t, s.Has("milk"))
	assert.True(t, s.Has("onion"))
	assert.False(t, s.Has("garlic"))
}

func TestCheckedSetKeysSorted(t *testing.T) {
	s := NewCheckedSet([]string{"onion", "milk", "garlic"})

	want := []string{"garlic", "milk", "onion"}
	// The same set always serializes to the same sequence.
	for range 5 {
		assert.Equal(t, want, s.Keys())
	}
}

func TestCheckedSetEmpty(t *testing.T) {
	s := NewCheckedSet(nil)
	assert.Empty(t, s.Keys())
	assert.False(t, s.Has("anything"))
}
