// Package window implements the desktop window manager: a z-ordered list of
// windows, each with its own pointer-interaction state machine for dragging
// and resizing, plus bounds clamping against the desktop container.
package window

// Vec is a 2D point or extent in desktop coordinates.
type Vec struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

const (
	// MinWidth and MinHeight are the floor a resize can never go below.
	MinWidth  = 320.0
	MinHeight = 200.0

	// TitlebarHeight is the drag strip at the top of the frame; clamping
	// keeps the full strip on screen.
	TitlebarHeight = 28.0

	// ResizeZoneSize is the square hot-zone at the bottom-right corner
	// where a pointer-down begins a resize instead of a drag.
	ResizeZoneSize = 18.0

	// MinVisibleWidth is the horizontal sliver of a window that clamping
	// keeps inside the container.
	MinVisibleWidth = 80.0
)

// mode is the per-window interaction state.
type mode int

const (
	modeIdle mode = iota
	modeDragging
	modeResizing
)

// noPointer marks the absence of an interaction pointer. Real pointer ids
// are non-negative.
const noPointer = -1

// View is one window. Position is the top-left corner in desktop
// coordinates. Interaction state is private; the Manager is the only
// mutator.
type View struct {
	AppID    string
	Title    string
	Position Vec
	Size     Vec

	mode         mode
	pointerID    int
	startPointer Vec
	startPos     Vec
	startSize    Vec

	resizeHot  bool
	closed     bool
	needsClamp bool
}

// IsDragging reports whether a drag is in progress.
func (v *View) IsDragging() bool { return v.mode == modeDragging }

// IsResizing reports whether a resize is in progress.
func (v *View) IsResizing() bool { return v.mode == modeResizing }

// ResizeHot reports whether the hover affordance for the resize corner is
// active.
func (v *View) ResizeHot() bool { return v.resizeHot }

// Closed reports whether the window has been closed. Operations on a closed
// view are no-ops.
func (v *View) Closed() bool { return v.closed }

// Contains reports whether p falls inside the window frame.
func (v *View) Contains(p Vec) bool {
	return p.X >= v.Position.X && p.X < v.Position.X+v.Size.X &&
		p.Y >= v.Position.Y && p.Y < v.Position.Y+v.Size.Y
}

// inResizeZone reports whether p is in the bottom-right resize hot-zone.
func (v *View) inResizeZone(p Vec) bool {
	corner := v.Position.Add(v.Size)
	return p.X >= corner.X-ResizeZoneSize && p.X < corner.X &&
		p.Y >= corner.Y-ResizeZoneSize && p.Y < corner.Y
}

// clearInteraction drops any in-progress drag or resize.
func (v *View) clearInteraction() {
	v.mode = modeIdle
	v.pointerID = noPointer
	v.startPointer = Vec{}
	v.startPos = Vec{}
	v.startSize = Vec{}
}
