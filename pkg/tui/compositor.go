package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/hackingproject/hackingos/pkg/window"
)

// The desktop is cell-based but the window manager thinks in points, so one
// terminal cell maps to a fixed point rectangle. The defaults below make a
// minimum-size window (320x200) a 40x12 cell frame.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cellToPoint converts a terminal cell position to desktop points.
func cellToPoint(col, row int) window.Vec {
	return window.Vec{X: float64(col) * cellWidth, Y: float64(row) * cellHeight}
}

// frameRect returns the window's frame in whole cells.
func frameRect(v *window.View) (col, row, cols, rows int) {
	col = int(v.Position.X / cellWidth)
	row = int(v.Position.Y / cellHeight)
	cols = int(v.Size.X / cellWidth)
	rows = int(v.Size.Y / cellHeight)
	if cols < 4 {
		cols = 4
	}
	if rows < 3 {
		rows = 3
	}
	return col, row, cols, rows
}

// ansiWidth and ansiTrunc are the styling-aware width and clip primitives
// the whole renderer is built on.
func ansiWidth(s string) int { return ansi.StringWidth(s) }

func ansiTrunc(s string, width int) string { return ansi.Truncate(s, width, "") }

// overlayLine splices over into base starting at column x. Both strings may
// carry ANSI styling; base keeps its own styling on either side of the
// splice.
func overlayLine(base, over string, x, totalWidth int) string {
	overWidth := ansi.StringWidth(over)
	if x >= totalWidth || overWidth == 0 {
		return base
	}
	if x < 0 {
		over = ansi.TruncateLeft(over, -x, "")
		overWidth = ansi.StringWidth(over)
		x = 0
	}
	if x+overWidth > totalWidth {
		over = ansi.Truncate(over, totalWidth-x, "")
		overWidth = ansi.StringWidth(over)
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+overWidth, "")
	return left + over + right
}

// overlayBlock splices a multi-line block onto the canvas at cell (x, y).
// Lines that fall outside the canvas are dropped.
func overlayBlock(canvas []string, block string, x, y, totalWidth int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		canvas[row] = overlayLine(canvas[row], line, x, totalWidth)
	}
}
