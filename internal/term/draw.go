package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/crosshair/internal/status"
	"github.com/dshills/crosshair/internal/style"
)

// Draw repaints every view and the echo line.
func (s *Screen) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	for _, id := range s.order {
		s.drawView(s.views[id])
	}
	s.drawEchoLine()
	s.screen.Show()
}

func (s *Screen) drawView(v *view) {
	if v == nil || v.width <= 0 || v.height <= 0 {
		return
	}

	textWidth := v.width
	if v.scrollbarVisible {
		textWidth--
	}

	rowStyle := s.rowStyle
	if rowStyle.IsZero() {
		rowStyle = defaultRowStyle
	}
	colStyle := s.colStyle
	if colStyle.IsZero() {
		colStyle = defaultColStyle
	}

	for row := 0; row < v.height; row++ {
		var line string
		if row < len(v.lines) {
			line = v.lines[row]
		}
		runes := []rune(line)

		for x := 0; x < textWidth; x++ {
			ch := ' '
			if x < len(runes) {
				ch = runes[x]
			}

			st := tcell.StyleDefault
			onRow := s.rowEngaged && row == v.curLine
			onCol := v.colEngaged && x == v.curCol
			switch {
			case onRow && onCol:
				// The crossing cell takes the row style.
				st = toTcell(rowStyle)
			case onRow:
				st = toTcell(rowStyle)
			case onCol:
				st = toTcell(colStyle)
			}

			s.screen.SetContent(v.x+x, v.y+row, ch, nil, st)
		}
	}

	if v.scrollbarVisible {
		s.drawScrollbar(v)
	}

	s.screen.ShowCursor(v.x+v.curCol, v.y+v.curLine)
}

// drawScrollbar paints the track on the view's right edge with a thumb
// at the cursor's relative position.
func (s *Screen) drawScrollbar(v *view) {
	x := v.x + v.width - 1
	thumb := 0
	if len(v.lines) > 1 {
		thumb = v.curLine * (v.height - 1) / (len(v.lines) - 1)
	}
	trackStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for row := 0; row < v.height; row++ {
		ch := '░'
		if row == thumb {
			ch = '█'
		}
		s.screen.SetContent(x, v.y+row, ch, nil, trackStyle)
	}
}

func (s *Screen) drawEchoLine() {
	width, height := s.screen.Size()
	if height == 0 {
		return
	}
	y := height - 1
	msg := status.Truncate(s.area.Current(), width)
	runes := []rune(msg)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		s.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
	}
}

// toTcell converts a style descriptor to a tcell style.
func toTcell(st style.Style) tcell.Style {
	out := tcell.StyleDefault
	if fg := st.Foreground; !fg.IsDefault() {
		out = out.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if bg := st.Background; !bg.IsDefault() {
		out = out.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	return out
}
