package hook

import (
	"sort"
	"sync"

	"github.com/dshills/crosshair/internal/input"
)

// Manager manages input hooks with priority-based ordering.
//
// Hook names are the deregistration handle: features that register hooks
// scoped to a view embed the view identifier in the name so that removing
// one view's hooks cannot affect another view's.
type Manager struct {
	mu        sync.RWMutex
	preHooks  []PreInputHook
	postHooks []PostInputHook
}

// NewManager creates a new hook manager.
func NewManager() *Manager {
	return &Manager{
		preHooks:  make([]PreInputHook, 0),
		postHooks: make([]PostInputHook, 0),
	}
}

// RegisterPre adds a pre-input hook.
// Hooks are sorted by priority (higher runs first).
func (m *Manager) RegisterPre(h PreInputHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.preHooks {
		if existing.Name() == h.Name() {
			m.preHooks[i] = h
			m.sortPreHooks()
			return
		}
	}

	m.preHooks = append(m.preHooks, h)
	m.sortPreHooks()
}

// RegisterPost adds a post-input hook.
// Hooks are sorted by priority (higher runs last for post-hooks).
func (m *Manager) RegisterPost(h PostInputHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.postHooks {
		if existing.Name() == h.Name() {
			m.postHooks[i] = h
			m.sortPostHooks()
			return
		}
	}

	m.postHooks = append(m.postHooks, h)
	m.sortPostHooks()
}

// UnregisterPre removes a pre-input hook by name.
func (m *Manager) UnregisterPre(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.preHooks {
		if h.Name() == name {
			m.preHooks = append(m.preHooks[:i], m.preHooks[i+1:]...)
			return true
		}
	}
	return false
}

// UnregisterPost removes a post-input hook by name.
func (m *Manager) UnregisterPost(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.postHooks {
		if h.Name() == name {
			m.postHooks = append(m.postHooks[:i], m.postHooks[i+1:]...)
			return true
		}
	}
	return false
}

// RunPre runs all pre-input hooks in priority order.
// Returns false if any hook consumed the event.
//
// The hook list is copied before running so hooks may register or
// unregister hooks (including themselves) from inside their callback.
func (m *Manager) RunPre(ev *input.Event) bool {
	m.mu.RLock()
	hooks := make([]PreInputHook, len(m.preHooks))
	copy(hooks, m.preHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreInput(ev) {
			return false
		}
	}
	return true
}

// RunPost runs all post-input hooks from lowest to highest priority.
func (m *Manager) RunPost(ev *input.Event) {
	m.mu.RLock()
	hooks := make([]PostInputHook, len(m.postHooks))
	copy(hooks, m.postHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		h.PostInput(ev)
	}
}

// PreCount returns the number of registered pre-input hooks.
func (m *Manager) PreCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.preHooks)
}

// PostCount returns the number of registered post-input hooks.
func (m *Manager) PostCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.postHooks)
}

// PreNames returns the names of all pre-input hooks in run order.
func (m *Manager) PreNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.preHooks))
	for i, h := range m.preHooks {
		names[i] = h.Name()
	}
	return names
}

// PostNames returns the names of all post-input hooks in run order.
func (m *Manager) PostNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.postHooks))
	for i, h := range m.postHooks {
		names[i] = h.Name()
	}
	return names
}

// Clear removes all hooks.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preHooks = m.preHooks[:0]
	m.postHooks = m.postHooks[:0]
}

// sortPreHooks sorts pre-hooks by priority descending (higher first).
func (m *Manager) sortPreHooks() {
	sort.Slice(m.preHooks, func(i, j int) bool {
		return m.preHooks[i].Priority() > m.preHooks[j].Priority()
	})
}

// sortPostHooks sorts post-hooks by priority ascending (lower first).
// Higher priority hooks observe the state left behind by lower ones.
func (m *Manager) sortPostHooks() {
	sort.Slice(m.postHooks, func(i, j int) bool {
		return m.postHooks[i].Priority() < m.postHooks[j].Priority()
	})
}
