package cloze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blank(answer string, index int) Part {
	return Part{Blank: &Blank{Answer: answer, Index: index}}
}

func TestAllocate(t *testing.T) {
	blocks := [][]Part{
		{blank("alpha", 0), Literal(" "), blank("bravo", 1)},
		{Literal("No blank here")},
		{blank("charlie", 0), Literal(", "), blank("delta", 1), Literal(" "), blank("echo", 2)},
	}

	actual, total := Allocate(blocks)
	require.Equal(t, 5, total)
	assert.Equal(t, [][]Part{
		{blank("alpha", 0), Literal(" "), blank("bravo", 1)},
		{Literal("No blank here")},
		{blank("charlie", 2), Literal(", "), blank("delta", 3), Literal(" "), blank("echo", 4)},
	}, actual)

	// The input is left untouched
	assert.Equal(t, 0, blocks[2][0].Blank.Index)
	assert.Equal(t, 2, blocks[2][4].Blank.Index)
}

func TestAllocateEmpty(t *testing.T) {
	actual, total := Allocate(nil)
	assert.Empty(t, actual)
	assert.Equal(t, 0, total)

	actual, total = Allocate([][]Part{{Literal("a")}, {}})
	assert.Equal(t, [][]Part{{Literal("a")}, {}}, actual)
	assert.Equal(t, 0, total)
}

func TestAllocateBlock(t *testing.T) {
	parts, next := allocateBlock([]Part{blank("a", 0), Literal(" "), blank("b", 1)}, 7)
	assert.Equal(t, 9, next)
	assert.Equal(t, []Part{blank("a", 7), Literal(" "), blank("b", 8)}, parts)
}
