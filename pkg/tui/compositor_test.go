package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackingproject/hackingos/pkg/window"
)

func TestOverlayLine(t *testing.T) {
	base := "0123456789"

	assert.Equal(t, "01abc56789", overlayLine(base, "abc", 2, 10))
	assert.Equal(t, "abc3456789", overlayLine(base, "abc", 0, 10))

	// Clipped at the right edge.
	assert.Equal(t, "01234567ab", overlayLine(base, "abcd", 8, 10))

	// Clipped at the left edge.
	assert.Equal(t, "cd23456789", overlayLine(base, "abcd", -2, 10))

	// Entirely off-canvas.
	assert.Equal(t, base, overlayLine(base, "abc", 12, 10))
}

func TestOverlayBlockDropsOutOfRangeRows(t *testing.T) {
	canvas := []string{"..........", "..........", ".........."}
	overlayBlock(canvas, "AA\nBB\nCC\nDD", 4, 1, 10)

	assert.Equal(t, "..........", canvas[0])
	assert.Equal(t, "....AA....", canvas[1])
	assert.Equal(t, "....BB....", canvas[2])
}

func TestFrameRectEnforcesMinimumCells(t *testing.T) {
	v := &window.View{Position: window.Vec{X: 80, Y: 32}, Size: window.Vec{X: 320, Y: 200}}
	col, row, cols, rows := frameRect(v)
	assert.Equal(t, 10, col)
	assert.Equal(t, 2, row)
	assert.Equal(t, 40, cols)
	assert.Equal(t, 12, rows)

	tiny := &window.View{Size: window.Vec{X: 8, Y: 16}}
	_, _, cols, rows = frameRect(tiny)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)
}

func TestCellToPoint(t *testing.T) {
	p := cellToPoint(5, 3)
	assert.Equal(t, window.Vec{X: 40, Y: 48}, p)
}
