// Package lua exposes the crosshair feature to user Lua scripts.
//
// Scripts load the module with require("crosshair") and drive the same
// entry points the key bindings use:
//
//	local ch = require("crosshair")
//	ch.flash(1.5)            -- highlight for 1.5 seconds
//	ch.toggle()              -- flip persistent highlighting
//	ch.pulse(true)           -- highlight until toggled off
//	if ch.active() then ... end
package lua

import (
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/crosshair/internal/crosshair"
)

// ViewResolver returns the view a script call applies to, typically the
// focused view at call time.
type ViewResolver func() string

// Runtime wraps a Lua state with the crosshair module preloaded.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes all
// access from Go code.
type Runtime struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewRuntime creates a Lua runtime bound to the given manager.
func NewRuntime(m *crosshair.Manager, view ViewResolver) *Runtime {
	L := lua.NewState()
	L.PreloadModule("crosshair", moduleLoader(m, view))
	return &Runtime{state: L}
}

// DoString executes a chunk of Lua source.
func (r *Runtime) DoString(src string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("lua runtime is closed")
	}
	return r.state.DoString(src)
}

// DoFile executes a Lua script file.
func (r *Runtime) DoFile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("lua runtime is closed")
	}
	return r.state.DoFile(path)
}

// Close releases the Lua state. The runtime is unusable afterwards.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.closed = true
		r.state.Close()
	}
}

func moduleLoader(m *crosshair.Manager, view ViewResolver) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			// toggle([n]) flips highlighting; a numeric argument forces
			// on with a duration in seconds (n > 0) or off (n <= 0).
			// Returns the new state.
			"toggle": func(L *lua.LState) int {
				opts := crosshair.ToggleOptions{}
				if L.GetTop() >= 1 {
					n := int(L.CheckNumber(1))
					opts.Arg = &n
				}
				on := m.Toggle(view(), opts)
				L.Push(lua.LBool(on))
				return 1
			},

			// flash([seconds]) highlights for a fixed duration; no
			// argument means the configured default.
			"flash": func(L *lua.LState) int {
				var d time.Duration
				if L.GetTop() >= 1 {
					secs := float64(L.CheckNumber(1))
					d = time.Duration(secs * float64(time.Second))
				}
				m.Flash(view(), d)
				return 0
			},

			// pulse([extend]) highlights until the next input event, or
			// until toggled off when extend is true. Deactivates when
			// already active.
			"pulse": func(L *lua.LState) int {
				extend := false
				if L.GetTop() >= 1 {
					extend = lua.LVAsBool(L.Get(1))
				}
				m.Pulse(view(), extend)
				return 0
			},

			// deactivate() turns highlighting off.
			"deactivate": func(L *lua.LState) int {
				m.Deactivate(view(), nil, true)
				return 0
			},

			// active() reports whether highlighting is displayed.
			"active": func(L *lua.LState) int {
				L.Push(lua.LBool(m.Active(view())))
				return 1
			},

			// state() returns the lifecycle state name.
			"state": func(L *lua.LState) int {
				L.Push(lua.LString(m.State(view()).String()))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
