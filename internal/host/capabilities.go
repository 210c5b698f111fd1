// Package host defines the editor facilities the crosshair feature drives:
// row and column highlighting, scrollbar visibility, idle popup delay,
// status reporting, display refresh, and cursor position queries.
//
// The feature only coordinates these facilities; it never renders anything
// itself. Optional facilities (Scrollbar, Idle) may be nil in Capabilities
// and callers must check before use.
package host

import (
	"time"

	"github.com/dshills/crosshair/internal/style"
)

// RowHighlighter shades the line containing the cursor.
// Row highlighting is process-global state shared across all views:
// engaging it affects every view, and other mechanisms may engage or
// disengage it independently.
type RowHighlighter interface {
	// Engage turns row highlighting on for all views.
	Engage()

	// Disengage turns row highlighting off and clears any residual
	// highlight left in other views.
	Disengage()

	// Engaged reports whether row highlighting is currently on.
	Engaged() bool

	// SetStyle overrides the highlight style.
	SetStyle(s style.Style)

	// ResetStyle restores the facility's own default style.
	ResetStyle()

	// Refresh redraws the highlight for the view's current cursor position.
	Refresh(viewID string)
}

// ColumnHighlighter shades the column containing the cursor, per view.
type ColumnHighlighter interface {
	// Engage turns column highlighting on for the view.
	Engage(viewID string)

	// Disengage turns column highlighting off for the view.
	Disengage(viewID string)

	// Engaged reports whether column highlighting is on for the view.
	Engaged(viewID string) bool

	// SetStyle overrides the highlight style.
	SetStyle(s style.Style)

	// ResetStyle restores the facility's own default style.
	ResetStyle()
}

// Scrollbar controls per-view scrollbar visibility. A visible scrollbar
// shifts the text area and would misalign the column highlight, so the
// feature hides it while a column highlight is engaged.
type Scrollbar interface {
	// Visible reports whether the scrollbar is shown for the view.
	Visible(viewID string) bool

	// SetVisible shows or hides the scrollbar for the view.
	SetVisible(viewID string, visible bool)

	// Redraw forces the scrollbar to repaint for the view.
	Redraw(viewID string)
}

// IdlePopups controls the per-view delay before idle documentation popups
// appear. Raising the delay keeps popups from overwriting the echoed
// cursor position before the user reads it.
type IdlePopups interface {
	// Delay returns the view's current idle popup delay.
	Delay(viewID string) time.Duration

	// SetDelay changes the view's idle popup delay.
	SetDelay(viewID string, d time.Duration)
}

// Reporter displays status messages. Echoed messages are transient and
// must never be retained in any message history.
type Reporter interface {
	// Echo displays a transient, non-persisted message.
	Echo(msg string)

	// Log displays a message and retains it in the message history.
	Log(msg string)
}

// Display refreshes the screen.
type Display interface {
	// Sync forces a synchronous redraw so pending highlight changes are
	// visible before anything else happens.
	Sync()
}

// Point is a cursor position snapshot.
type Point struct {
	// Offset is the cursor's byte offset within the document.
	Offset int64

	// Line and Col are the 0-indexed screen position.
	Line, Col int
}

// Mark is a stable reference to a document position. Its offset is
// adjusted as edits shift surrounding text, so it remains usable after
// the document changes.
type Mark interface {
	// Offset returns the marked position's current byte offset.
	Offset() int64
}

// Points exposes cursor position queries per view.
type Points interface {
	// Point returns the view's current cursor position.
	Point(viewID string) Point

	// Mark returns a stable reference to the view's current cursor position.
	Mark(viewID string) Mark
}

// Capabilities bundles the facilities the feature consumes.
// Scrollbar and Idle are optional and may be nil.
type Capabilities struct {
	Rows      RowHighlighter
	Columns   ColumnHighlighter
	Scrollbar Scrollbar
	Idle      IdlePopups
	Status    Reporter
	Display   Display
	Points    Points
}
