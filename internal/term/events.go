package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/crosshair/internal/input"
)

// PollEvent blocks for the next terminal event and converts it.
// Returns nil when the screen has been finalized.
func (s *Screen) PollEvent() *input.Event {
	for {
		tev := s.screen.PollEvent()
		if tev == nil {
			return nil
		}
		if ev := s.convertEvent(tev); ev != nil {
			return ev
		}
		// Unrecognized event kinds are dropped and polling continues.
	}
}

func (s *Screen) convertEvent(tev tcell.Event) *input.Event {
	viewID := s.FocusedView()

	switch ev := tev.(type) {
	case *tcell.EventKey:
		out := &input.Event{Kind: input.KindKey, ViewID: viewID}
		if ev.Key() == tcell.KeyRune {
			out.Rune = ev.Rune()
		} else {
			out.Key = tcell.KeyNames[ev.Key()]
		}
		return out

	case *tcell.EventMouse:
		return &input.Event{Kind: input.KindMouse, ViewID: viewID}

	case *tcell.EventPaste:
		return &input.Event{Kind: input.KindPaste, ViewID: viewID}

	case *tcell.EventResize:
		w, h := ev.Size()
		return &input.Event{Kind: input.KindResize, ViewID: viewID, Width: w, Height: h}

	case *tcell.EventFocus:
		return &input.Event{Kind: input.KindFocus, ViewID: viewID, Focused: ev.Focused}

	default:
		return nil
	}
}
