// Package hook provides pre/post input-event hooks for the input pipeline.
package hook

import (
	"github.com/dshills/crosshair/internal/input"
)

// Hook is the base interface for all input hooks.
type Hook interface {
	// Name returns a unique identifier for this hook.
	// Registering a hook with an existing name replaces the old one.
	Name() string

	// Priority returns the hook priority.
	// Higher values run first for pre-hooks, last for post-hooks.
	// Standard priorities:
	//   1000+ = system/critical hooks
	//   500-999 = framework hooks
	//   100-499 = feature hooks
	//   0-99 = user hooks
	Priority() int
}

// PreInputHook is called before an input event is handled.
type PreInputHook interface {
	Hook

	// PreInput is called before the event is handled.
	// Returns false to consume the event and stop normal handling.
	PreInput(ev *input.Event) bool
}

// PostInputHook is called after an input event has been handled.
type PostInputHook interface {
	Hook

	// PostInput is called after the event has been handled.
	PostInput(ev *input.Event)
}

// PreInputFunc wraps a function as a PreInputHook.
type PreInputFunc struct {
	name     string
	priority int
	fn       func(ev *input.Event) bool
}

// NewPreInputFunc creates a new PreInputFunc hook.
func NewPreInputFunc(name string, priority int, fn func(ev *input.Event) bool) *PreInputFunc {
	return &PreInputFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PreInputFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PreInputFunc) Priority() int { return f.priority }

// PreInput implements PreInputHook.
func (f *PreInputFunc) PreInput(ev *input.Event) bool {
	if f.fn == nil {
		return true
	}
	return f.fn(ev)
}

// PostInputFunc wraps a function as a PostInputHook.
type PostInputFunc struct {
	name     string
	priority int
	fn       func(ev *input.Event)
}

// NewPostInputFunc creates a new PostInputFunc hook.
func NewPostInputFunc(name string, priority int, fn func(ev *input.Event)) *PostInputFunc {
	return &PostInputFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements Hook.
func (f *PostInputFunc) Name() string { return f.name }

// Priority implements Hook.
func (f *PostInputFunc) Priority() int { return f.priority }

// PostInput implements PostInputHook.
func (f *PostInputFunc) PostInput(ev *input.Event) {
	if f.fn != nil {
		f.fn(ev)
	}
}
