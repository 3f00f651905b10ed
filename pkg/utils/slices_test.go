package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, RemoveDuplicates([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{}, RemoveDuplicates([]int{}))
}

func TestRemoveAt(t *testing.T) {
	in := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "c"}, RemoveAt(in, 1))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveAt(in, 5))
	assert.Equal(t, []string{"a", "b", "c"}, in)
}
