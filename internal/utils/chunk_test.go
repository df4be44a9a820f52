package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	chunks := Chunk(items, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
}

func TestChunkExactFit(t *testing.T) {
	chunks := Chunk([]int{1, 2, 3, 4}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
}

func TestChunkEmpty(t *testing.T) {
	assert.Nil(t, Chunk([]int(nil), 3))
}

func TestChunkSizeBelowOne(t *testing.T) {
	chunks := Chunk([]int{1, 2}, 0)
	assert.Equal(t, [][]int{{1, 2}}, chunks)
}
