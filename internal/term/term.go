// Package term implements the host capabilities on a tcell terminal.
//
// It renders one or more text views, shades the cursor row and column
// when the corresponding facility is engaged, draws a scrollbar on the
// right edge of each view, and shows the echo area on the bottom line.
package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/crosshair/internal/host"
	"github.com/dshills/crosshair/internal/status"
	"github.com/dshills/crosshair/internal/style"
)

// Facility default styles, used when no override is set.
var (
	defaultRowStyle = style.Style{Background: style.RGB(0x3a, 0x3a, 0x3a)}
	defaultColStyle = style.Style{Background: style.RGB(0x30, 0x30, 0x30)}
)

// Screen is a tcell-backed host.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	views  map[string]*view
	order  []string

	rowEngaged bool
	rowStyle   style.Style
	colStyle   style.Style

	focused string

	area *status.Area
}

type view struct {
	x, y, width, height int

	lines            []string
	curLine, curCol  int
	colEngaged       bool
	scrollbarVisible bool
	idleDelay        time.Duration
}

// New creates a Screen on a real terminal.
func New() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return FromTcell(ts), nil
}

// FromTcell creates a Screen over an existing tcell screen, such as a
// simulation screen in tests.
func FromTcell(ts tcell.Screen) *Screen {
	return &Screen{
		screen: ts,
		views:  make(map[string]*view),
		area:   status.NewArea(),
	}
}

// Init initializes the underlying terminal.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	s.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// AddView registers a text view at the given bounds.
func (s *Screen) AddView(id string, lines []string, x, y, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[id] = &view{
		x: x, y: y, width: width, height: height,
		lines:            lines,
		scrollbarVisible: true,
		idleDelay:        host.DefaultIdleDelay,
	}
	s.order = append(s.order, id)
	if s.focused == "" {
		s.focused = id
	}
}

// FocusView marks the view input events are attributed to.
func (s *Screen) FocusView(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.views[id]; ok {
		s.focused = id
	}
}

// FocusedView returns the view input events are attributed to.
func (s *Screen) FocusedView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// SetCursor positions a view's cursor (0-indexed line and column).
func (s *Screen) SetCursor(id string, line, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[id]
	if !ok {
		return
	}
	if line < 0 {
		line = 0
	}
	if line >= len(v.lines) {
		line = len(v.lines) - 1
	}
	if col < 0 {
		col = 0
	}
	if line >= 0 && col > len(v.lines[line]) {
		col = len(v.lines[line])
	}
	v.curLine, v.curCol = line, col
}

// Cursor returns a view's cursor position.
func (s *Screen) Cursor(id string) (line, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[id]; ok {
		return v.curLine, v.curCol
	}
	return 0, 0
}

// Capabilities returns the host capability bundle.
func (s *Screen) Capabilities() host.Capabilities {
	return host.Capabilities{
		Rows:      screenRows{s},
		Columns:   screenColumns{s},
		Scrollbar: s,
		Idle:      s,
		Status:    s,
		Display:   s,
		Points:    s,
	}
}

// Area returns the echo area rendered on the bottom line.
func (s *Screen) Area() *status.Area {
	return s.area
}

// screenRows adapts Screen to host.RowHighlighter.
type screenRows struct {
	s *Screen
}

func (r screenRows) Engage() {
	r.s.mu.Lock()
	r.s.rowEngaged = true
	r.s.mu.Unlock()
}

func (r screenRows) Disengage() {
	r.s.mu.Lock()
	r.s.rowEngaged = false
	r.s.mu.Unlock()
}

func (r screenRows) Engaged() bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.rowEngaged
}

func (r screenRows) SetStyle(st style.Style) {
	r.s.mu.Lock()
	r.s.rowStyle = st
	r.s.mu.Unlock()
}

func (r screenRows) ResetStyle() {
	r.s.mu.Lock()
	r.s.rowStyle = style.Style{}
	r.s.mu.Unlock()
}

func (r screenRows) Refresh(string) {
	r.s.Draw()
}

// screenColumns adapts Screen to host.ColumnHighlighter.
type screenColumns struct {
	s *Screen
}

func (c screenColumns) Engage(viewID string) {
	c.s.mu.Lock()
	if v, ok := c.s.views[viewID]; ok {
		v.colEngaged = true
	}
	c.s.mu.Unlock()
}

func (c screenColumns) Disengage(viewID string) {
	c.s.mu.Lock()
	if v, ok := c.s.views[viewID]; ok {
		v.colEngaged = false
	}
	c.s.mu.Unlock()
}

func (c screenColumns) Engaged(viewID string) bool {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	v, ok := c.s.views[viewID]
	return ok && v.colEngaged
}

func (c screenColumns) SetStyle(st style.Style) {
	c.s.mu.Lock()
	c.s.colStyle = st
	c.s.mu.Unlock()
}

func (c screenColumns) ResetStyle() {
	c.s.mu.Lock()
	c.s.colStyle = style.Style{}
	c.s.mu.Unlock()
}

// Visible implements host.Scrollbar.
func (s *Screen) Visible(viewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[viewID]
	return ok && v.scrollbarVisible
}

// SetVisible implements host.Scrollbar.
func (s *Screen) SetVisible(viewID string, visible bool) {
	s.mu.Lock()
	if v, ok := s.views[viewID]; ok {
		v.scrollbarVisible = visible
	}
	s.mu.Unlock()
}

// Redraw implements host.Scrollbar.
func (s *Screen) Redraw(string) {
	s.Draw()
}

// Delay implements host.IdlePopups.
func (s *Screen) Delay(viewID string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.views[viewID]; ok {
		return v.idleDelay
	}
	return 0
}

// SetDelay implements host.IdlePopups.
func (s *Screen) SetDelay(viewID string, d time.Duration) {
	s.mu.Lock()
	if v, ok := s.views[viewID]; ok {
		v.idleDelay = d
	}
	s.mu.Unlock()
}

// Echo implements host.Reporter.
func (s *Screen) Echo(msg string) {
	s.area.Echo(msg)
	s.Draw()
}

// Log implements host.Reporter.
func (s *Screen) Log(msg string) {
	s.area.Log(msg)
	s.Draw()
}

// Sync implements host.Display: redraw and flush synchronously.
func (s *Screen) Sync() {
	s.Draw()
	s.screen.Sync()
}

// Point implements host.Points.
func (s *Screen) Point(viewID string) host.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[viewID]
	if !ok {
		return host.Point{}
	}
	return host.Point{
		Offset: v.offset(),
		Line:   v.curLine,
		Col:    v.curCol,
	}
}

// Mark implements host.Points. Views rendered by this package are not
// editable, so a mark is a plain snapshot of the current offset.
func (s *Screen) Mark(viewID string) host.Mark {
	return fixedMark(s.Point(viewID).Offset)
}

type fixedMark int64

func (m fixedMark) Offset() int64 { return int64(m) }

// offset converts the cursor position to a byte offset, counting one
// byte per line terminator.
func (v *view) offset() int64 {
	var off int64
	for i := 0; i < v.curLine && i < len(v.lines); i++ {
		off += int64(len(v.lines[i])) + 1
	}
	return off + int64(v.curCol)
}
