package crosshair_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/crosshair/internal/crosshair"
	"github.com/dshills/crosshair/internal/host"
	"github.com/dshills/crosshair/internal/input"
)

func TestHandlerCanHandle(t *testing.T) {
	m, _ := newManager(t)
	h := crosshair.NewHandler(m)

	if h.Namespace() != "crosshair" {
		t.Errorf("Namespace() = %q", h.Namespace())
	}

	for _, name := range []string{crosshair.ActionToggle, crosshair.ActionFlash, crosshair.ActionPulse} {
		if !h.CanHandle(name) {
			t.Errorf("CanHandle(%q) = false", name)
		}
	}
	if h.CanHandle("editor.save") {
		t.Error("CanHandle should reject foreign actions")
	}
}

func TestHandlerUnknownAction(t *testing.T) {
	m, _ := newManager(t)
	h := crosshair.NewHandler(m)

	err := h.HandleAction(input.Action{Name: "editor.save", ViewID: view})
	if !errors.Is(err, crosshair.ErrUnknownAction) {
		t.Errorf("err = %v, want ErrUnknownAction", err)
	}
}

func TestHandlerToggle(t *testing.T) {
	m, _ := newManager(t)
	h := crosshair.NewHandler(m)

	if err := h.HandleAction(input.Action{Name: crosshair.ActionToggle, ViewID: view}); err != nil {
		t.Fatal(err)
	}
	if m.State(view) != crosshair.StateUntilToggled {
		t.Errorf("state = %v, want until-toggled", m.State(view))
	}

	if err := h.HandleAction(input.Action{Name: crosshair.ActionToggle, ViewID: view}); err != nil {
		t.Fatal(err)
	}
	if m.Active(view) {
		t.Error("second toggle should turn off")
	}
}

func TestHandlerToggleWithCount(t *testing.T) {
	m, _ := newManager(t)
	h := crosshair.NewHandler(m)

	action := input.Action{Name: crosshair.ActionToggle, ViewID: view}.WithCount(1)
	if err := h.HandleAction(action); err != nil {
		t.Fatal(err)
	}
	if m.State(view) != crosshair.StateTimed {
		t.Errorf("state = %v, want timed for positive count", m.State(view))
	}

	action = input.Action{Name: crosshair.ActionToggle, ViewID: view}.WithCount(0)
	if err := h.HandleAction(action); err != nil {
		t.Fatal(err)
	}
	if m.Active(view) {
		t.Error("zero count should force off")
	}
}

func TestHandlerFlash(t *testing.T) {
	h := host.NewHeadless()
	m := crosshair.NewManager(h.Capabilities(), nil, nil)
	hd := crosshair.NewHandler(m)

	if err := hd.HandleAction(input.Action{Name: crosshair.ActionFlash, ViewID: view}); err != nil {
		t.Fatal(err)
	}
	if m.State(view) != crosshair.StateTimed {
		t.Errorf("state = %v, want timed", m.State(view))
	}
	// Default duration is seconds-scale; it must still be pending.
	time.Sleep(30 * time.Millisecond)
	if !m.Active(view) {
		t.Error("flash expired far too early")
	}
}

func TestHandlerPulse(t *testing.T) {
	m, _ := newManager(t)
	h := crosshair.NewHandler(m)

	if err := h.HandleAction(input.Action{Name: crosshair.ActionPulse, ViewID: view}); err != nil {
		t.Fatal(err)
	}
	if m.State(view) != crosshair.StateUntilEvent {
		t.Errorf("state = %v, want until-event", m.State(view))
	}

	m.Deactivate(view, nil, true)

	// A count makes the pulse persistent.
	action := input.Action{Name: crosshair.ActionPulse, ViewID: view}.WithCount(1)
	if err := h.HandleAction(action); err != nil {
		t.Fatal(err)
	}
	if m.State(view) != crosshair.StateUntilToggled {
		t.Errorf("state = %v, want until-toggled", m.State(view))
	}
}
