package crosshair

import (
	"time"

	"github.com/dshills/crosshair/internal/input"
)

// Action names for crosshair operations.
const (
	// ActionToggle turns highlighting on or off until toggled again.
	// A positive numeric modifier requests timed behavior instead, with
	// the modifier as the duration in seconds.
	ActionToggle = "crosshair.toggle"

	// ActionFlash turns highlighting on for a fixed duration. A numeric
	// modifier overrides the configured duration.
	ActionFlash = "crosshair.flash"

	// ActionPulse turns highlighting on until the next input event, or
	// off if already on. A numeric modifier makes it persistent.
	ActionPulse = "crosshair.pulse"
)

// Handler implements namespace-based handling of crosshair actions.
// These are the key-bindable entry points.
type Handler struct {
	manager *Manager
}

// NewHandler creates a new crosshair action handler.
func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

// Namespace returns the crosshair namespace.
func (h *Handler) Namespace() string {
	return "crosshair"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionToggle, ActionFlash, ActionPulse:
		return true
	}
	return false
}

// HandleAction processes a crosshair action.
func (h *Handler) HandleAction(action input.Action) error {
	switch action.Name {
	case ActionToggle:
		opts := ToggleOptions{}
		if action.HasCount {
			n := action.Count
			opts.Arg = &n
		}
		h.manager.Toggle(action.ViewID, opts)
		return nil

	case ActionFlash:
		var d time.Duration
		if action.HasCount {
			d = time.Duration(action.Count) * time.Second
		}
		h.manager.Flash(action.ViewID, d)
		return nil

	case ActionPulse:
		h.manager.Pulse(action.ViewID, action.HasCount)
		return nil
	}
	return ErrUnknownAction
}
