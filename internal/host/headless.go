package host

import (
	"sync"
	"time"

	"github.com/dshills/crosshair/internal/status"
	"github.com/dshills/crosshair/internal/style"
)

// DefaultIdleDelay is the idle popup delay a fresh headless view starts with.
const DefaultIdleDelay = 500 * time.Millisecond

// Headless is a complete in-memory host with no display attached.
// It implements every capability and records the state the feature
// drives, which makes it the host of choice for tests and for
// script-driven use.
type Headless struct {
	mu sync.Mutex

	// Global row highlight state.
	rowEngaged bool
	rowStyle   style.Style

	// Column highlight style is shared; engagement is per view.
	colStyle style.Style

	views map[string]*headlessView

	area *status.Area

	syncs    int
	refreshs int
}

type headlessView struct {
	colEngaged bool
	scrollbar  bool
	sbRedraws  int
	idleDelay  time.Duration
	point      Point
	marks      []*headlessMark
}

type headlessMark struct {
	mu     sync.Mutex
	offset int64
}

// Offset implements Mark.
func (m *headlessMark) Offset() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offset
}

// NewHeadless creates a headless host. Views spring into existence on
// first use, with the scrollbar visible and the default idle delay.
func NewHeadless() *Headless {
	return &Headless{
		views: make(map[string]*headlessView),
		area:  status.NewArea(),
	}
}

// Capabilities returns the host's capability bundle.
func (h *Headless) Capabilities() Capabilities {
	return Capabilities{
		Rows:      headlessRows{h},
		Columns:   headlessColumns{h},
		Scrollbar: h,
		Idle:      h,
		Status:    h,
		Display:   h,
		Points:    h,
	}
}

func (h *Headless) view(id string) *headlessView {
	v, ok := h.views[id]
	if !ok {
		v = &headlessView{scrollbar: true, idleDelay: DefaultIdleDelay}
		h.views[id] = v
	}
	return v
}

// headlessRows adapts Headless to RowHighlighter.
type headlessRows struct {
	h *Headless
}

func (r headlessRows) Engage() {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.rowEngaged = true
}

func (r headlessRows) Disengage() {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.rowEngaged = false
}

func (r headlessRows) Engaged() bool {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	return r.h.rowEngaged
}

func (r headlessRows) SetStyle(s style.Style) {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.rowStyle = s
}

func (r headlessRows) ResetStyle() {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.rowStyle = style.Style{}
}

func (r headlessRows) Refresh(string) {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	r.h.refreshs++
}

// headlessColumns adapts Headless to ColumnHighlighter.
type headlessColumns struct {
	h *Headless
}

func (c headlessColumns) Engage(viewID string) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.view(viewID).colEngaged = true
}

func (c headlessColumns) Disengage(viewID string) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.view(viewID).colEngaged = false
}

func (c headlessColumns) Engaged(viewID string) bool {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	return c.h.view(viewID).colEngaged
}

func (c headlessColumns) SetStyle(s style.Style) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.colStyle = s
}

func (c headlessColumns) ResetStyle() {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.colStyle = style.Style{}
}

// Visible implements Scrollbar.
func (h *Headless) Visible(viewID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(viewID).scrollbar
}

// SetVisible implements Scrollbar.
func (h *Headless) SetVisible(viewID string, visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view(viewID).scrollbar = visible
}

// Redraw implements Scrollbar.
func (h *Headless) Redraw(viewID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view(viewID).sbRedraws++
}

// Delay implements IdlePopups.
func (h *Headless) Delay(viewID string) time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(viewID).idleDelay
}

// SetDelay implements IdlePopups.
func (h *Headless) SetDelay(viewID string, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view(viewID).idleDelay = d
}

// Echo implements Reporter.
func (h *Headless) Echo(msg string) {
	h.area.Echo(msg)
}

// Log implements Reporter.
func (h *Headless) Log(msg string) {
	h.area.Log(msg)
}

// Sync implements Display.
func (h *Headless) Sync() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.syncs++
}

// Point implements Points.
func (h *Headless) Point(viewID string) Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(viewID).point
}

// Mark implements Points.
func (h *Headless) Mark(viewID string) Mark {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.view(viewID)
	m := &headlessMark{offset: v.point.Offset}
	v.marks = append(v.marks, m)
	return m
}

// SetPoint positions the view's cursor.
func (h *Headless) SetPoint(viewID string, p Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view(viewID).point = p
}

// ApplyEdit records an insertion (delta > 0) or deletion (delta < 0) of
// delta bytes at the given offset, shifting the cursor and any marks at
// or after it.
func (h *Headless) ApplyEdit(viewID string, at int64, delta int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.view(viewID)
	if v.point.Offset >= at {
		v.point.Offset += delta
		if v.point.Offset < at {
			v.point.Offset = at
		}
	}
	for _, m := range v.marks {
		m.mu.Lock()
		if m.offset >= at {
			m.offset += delta
			if m.offset < at {
				m.offset = at
			}
		}
		m.mu.Unlock()
	}
}

// Area returns the host's echo area, for inspecting messages.
func (h *Headless) Area() *status.Area {
	return h.area
}

// SyncCount returns how many synchronous refreshes were requested.
func (h *Headless) SyncCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.syncs
}

// RefreshCount returns how many row highlight refreshes were requested.
func (h *Headless) RefreshCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refreshs
}

// ScrollbarRedraws returns how many scrollbar repaints the view received.
func (h *Headless) ScrollbarRedraws(viewID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(viewID).sbRedraws
}

// RowStyle returns the current row highlight style override.
func (h *Headless) RowStyle() style.Style {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rowStyle
}

// ColumnStyle returns the current column highlight style override.
func (h *Headless) ColumnStyle() style.Style {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.colStyle
}
