// Package status provides the echo area: a one-line status display with an
// optional message history.
//
// Messages come in two flavors. Echoed messages are transient: they are
// shown until the next message replaces them and are never retained in the
// history. Logged messages are shown and appended to the history.
package status

import (
	"sync"
)

// DefaultHistorySize is the number of logged messages retained.
const DefaultHistorySize = 100

// Area is a thread-safe echo area.
type Area struct {
	mu       sync.Mutex
	current  string
	history  []string
	capacity int
}

// NewArea creates a new echo area with the default history capacity.
func NewArea() *Area {
	return &Area{capacity: DefaultHistorySize}
}

// Echo displays a transient message. It is not added to the history.
func (a *Area) Echo(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = msg
}

// Log displays a message and appends it to the history.
func (a *Area) Log(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = msg
	a.history = append(a.history, msg)
	if len(a.history) > a.capacity {
		a.history = a.history[len(a.history)-a.capacity:]
	}
}

// Clear removes the currently displayed message. History is unaffected.
func (a *Area) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = ""
}

// Current returns the currently displayed message.
func (a *Area) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// History returns a copy of the logged message history, oldest first.
func (a *Area) History() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}
