package crosshair

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/crosshair/internal/config"
	"github.com/dshills/crosshair/internal/hook"
	"github.com/dshills/crosshair/internal/host"
	"github.com/dshills/crosshair/internal/input"
)

// Axis selects which highlight facilities an activation engages.
type Axis uint8

const (
	// AxisBoth engages the row and column highlights.
	AxisBoth Axis = iota
	// AxisRow engages only the row highlight.
	AxisRow
	// AxisColumn engages only the column highlight.
	AxisColumn
)

// Expiry selects how an activation ends.
type Expiry uint8

const (
	// ExpireOnToggle keeps highlighting until an explicit deactivation.
	ExpireOnToggle Expiry = iota
	// ExpireOnInput ends highlighting on the next non-frame-switch input event.
	ExpireOnInput
	// ExpireAfter ends highlighting after a fixed duration.
	ExpireAfter
)

// State describes a view's current lifecycle state.
type State uint8

const (
	// StateInactive means no highlighting is displayed.
	StateInactive State = iota
	// StateUntilToggled means highlighting persists until toggled off.
	StateUntilToggled
	// StateUntilEvent means highlighting ends on the next input event.
	StateUntilEvent
	// StateTimed means highlighting ends when its timer fires.
	StateTimed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateUntilToggled:
		return "until-toggled"
	case StateUntilEvent:
		return "until-event"
	case StateTimed:
		return "timed"
	default:
		return "unknown"
	}
}

// MinFlash is the shortest timed activation honored.
const MinFlash = 10 * time.Millisecond

// Hook names are keyed by view so that deactivating one view never
// removes another view's hooks.
const (
	reportHookPrefix = "crosshair.report:"
	expireHookPrefix = "crosshair.expire:"

	reportPriority = 400
	expirePriority = 900
)

func reportHookName(viewID string) string { return reportHookPrefix + viewID }
func expireHookName(viewID string) string { return expireHookPrefix + viewID }

// Options configures an activation.
type Options struct {
	// Axis selects the facilities to engage.
	Axis Axis

	// Expiry selects the activation lifetime.
	Expiry Expiry

	// Duration overrides the configured flash duration for ExpireAfter.
	// Zero or negative means use the configured default.
	Duration time.Duration
}

// ToggleOptions configures a Toggle call.
type ToggleOptions struct {
	// Arg is the numeric modifier: positive forces on with a duration
	// hint in seconds, zero or negative forces off, nil toggles.
	Arg *int

	// Expiry applies when turning on without an Arg.
	Expiry Expiry

	// Duration is the duration hint for timed expiry.
	Duration time.Duration

	// Quiet suppresses the "disabled" message when turning off.
	Quiet bool
}

// viewState is the per-view lifecycle record. At most one deactivation
// timer is outstanding per view; timerSeq invalidates callbacks from
// timers that were replaced or cancelled after firing was scheduled.
type viewState struct {
	active             bool
	expiry             Expiry
	suspendedScrollbar bool
	savedIdleDelay     *time.Duration
	timer              *time.Timer
	timerSeq           uint64
}

// Manager owns the per-view highlight lifecycle state and drives the
// host facilities. All methods are safe for concurrent use.
//
// The Rows and Columns capabilities are required; Scrollbar, Idle,
// Status, Display, and Points are optional and skipped when nil.
type Manager struct {
	mu    sync.Mutex
	caps  host.Capabilities
	hooks *hook.Manager
	cfg   *config.Config
	views map[string]*viewState
}

// NewManager creates a manager over the given host capabilities.
// A nil hooks manager or config is replaced with a fresh one.
func NewManager(caps host.Capabilities, hooks *hook.Manager, cfg *config.Config) *Manager {
	if hooks == nil {
		hooks = hook.NewManager()
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &Manager{
		caps:  caps,
		hooks: hooks,
		cfg:   cfg,
		views: make(map[string]*viewState),
	}
}

// Hooks returns the hook manager events must be run through for the
// until-next-event lifetime and the position echo to work.
func (m *Manager) Hooks() *hook.Manager {
	return m.hooks
}

func (m *Manager) state(viewID string) *viewState {
	st, ok := m.views[viewID]
	if !ok {
		st = &viewState{}
		m.views[viewID] = st
	}
	return st
}

// Active reports whether highlighting is displayed for the view.
func (m *Manager) Active(viewID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.views[viewID]
	return ok && st.active
}

// State returns the view's lifecycle state.
func (m *Manager) State(viewID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.views[viewID]
	if !ok || !st.active {
		return StateInactive
	}
	switch st.expiry {
	case ExpireOnInput:
		return StateUntilEvent
	case ExpireAfter:
		return StateTimed
	default:
		return StateUntilToggled
	}
}

// Activate turns highlighting on for the view and returns a stable
// reference to the cursor position (nil if the host exposes none).
//
// Activation always performs a full deactivation first so that repeated
// activation never accumulates conflicting styles.
func (m *Manager) Activate(viewID string, opts Options) host.Mark {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(viewID)
	m.deactivateLocked(viewID, st, nil, true)

	st.active = true
	st.expiry = opts.Expiry

	cc := m.cfg.Crosshair()
	if hl := cc.Style(); !hl.IsZero() {
		m.caps.Rows.SetStyle(hl)
		m.caps.Columns.SetStyle(hl)
	}

	if opts.Axis != AxisRow {
		// A visible scrollbar shifts the text area and would misalign
		// the column highlight; hide it and remember to restore it.
		if sb := m.caps.Scrollbar; sb != nil && sb.Visible(viewID) {
			st.suspendedScrollbar = true
			sb.SetVisible(viewID, false)
		}
		m.caps.Columns.Engage(viewID)
	}

	if opts.Axis != AxisColumn {
		if !m.caps.Rows.Engaged() {
			m.caps.Rows.Engage()
		}
		m.caps.Rows.Refresh(viewID)
	}

	// Highlighting must be visible before any other effect.
	if m.caps.Display != nil {
		m.caps.Display.Sync()
	}

	// Hold off idle popups so they don't overwrite the position echo
	// before the user reads it.
	if idle := m.caps.Idle; idle != nil {
		saved := idle.Delay(viewID)
		st.savedIdleDelay = &saved
		idle.SetDelay(viewID, cc.IdlePopupDelay)
	}

	m.hooks.RegisterPost(hook.NewPostInputFunc(reportHookName(viewID), reportPriority, func(*input.Event) {
		m.reportPoint(viewID)
	}))

	switch opts.Expiry {
	case ExpireOnInput:
		m.hooks.RegisterPre(hook.NewPreInputFunc(expireHookName(viewID), expirePriority, func(ev *input.Event) bool {
			m.Deactivate(viewID, ev, false)
			return true
		}))
	case ExpireAfter:
		d := opts.Duration
		if d <= 0 {
			d = cc.FlashDuration
		}
		if d < MinFlash {
			d = MinFlash
		}
		m.scheduleLocked(viewID, st, d)
	}

	if m.caps.Points != nil {
		return m.caps.Points.Mark(viewID)
	}
	return nil
}

// Deactivate turns highlighting off for the view. When force is false
// and trigger is a frame-switch event, the call is a no-op: focus moving
// between windows must not dismiss the highlight. Safe to call when
// already inactive.
func (m *Manager) Deactivate(viewID string, trigger *input.Event, force bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deactivateLocked(viewID, m.state(viewID), trigger, force)
}

func (m *Manager) deactivateLocked(viewID string, st *viewState, trigger *input.Event, force bool) {
	if !force && trigger.FrameSwitch() {
		return
	}

	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	st.timerSeq++

	// The row facility is global; disengaging clears residual
	// highlights in other views too.
	m.caps.Rows.Disengage()
	m.caps.Rows.ResetStyle()
	m.caps.Columns.Disengage(viewID)
	m.caps.Columns.ResetStyle()

	if st.suspendedScrollbar {
		if sb := m.caps.Scrollbar; sb != nil {
			sb.SetVisible(viewID, true)
			sb.Redraw(viewID)
		}
		st.suspendedScrollbar = false
	}

	st.active = false

	if st.savedIdleDelay != nil {
		if idle := m.caps.Idle; idle != nil {
			idle.SetDelay(viewID, *st.savedIdleDelay)
		}
		st.savedIdleDelay = nil
	}

	m.hooks.UnregisterPost(reportHookName(viewID))
	m.hooks.UnregisterPre(expireHookName(viewID))
}

// Toggle flips highlighting for the view and returns the new target.
//
// With no Arg the target is the inverse of the current state, reconciled
// against the real facility state: both facilities engaged reads as "on"
// (even if something outside this manager engaged them), both disengaged
// reads as "off". The inference is heuristic — it misreads the state when
// exactly one facility was toggled externally — and is kept as is.
func (m *Manager) Toggle(viewID string, opts ToggleOptions) bool {
	var on bool
	expiry := opts.Expiry
	duration := opts.Duration

	switch {
	case opts.Arg == nil:
		on = !m.Active(viewID)
		rows := m.caps.Rows.Engaged()
		cols := m.caps.Columns.Engaged(viewID)
		if rows && cols {
			on = false
		} else if !rows && !cols {
			on = true
		}
	case *opts.Arg > 0:
		on = true
		expiry = ExpireAfter
		duration = time.Duration(*opts.Arg) * time.Second
	default:
		on = false
	}

	if on {
		m.Activate(viewID, Options{Axis: AxisBoth, Expiry: expiry, Duration: duration})
		return true
	}

	m.Deactivate(viewID, nil, false)
	if !opts.Quiet && m.caps.Status != nil {
		m.caps.Status.Echo("Crosshair highlighting disabled")
	}
	return false
}

// Flash turns highlighting on for the given duration (the configured
// default when d is zero or negative).
func (m *Manager) Flash(viewID string, d time.Duration) {
	m.Activate(viewID, Options{Axis: AxisBoth, Expiry: ExpireAfter, Duration: d})
}

// Pulse deactivates if active; otherwise it activates until the next
// input event, or until toggled off when extend is true.
func (m *Manager) Pulse(viewID string, extend bool) {
	if m.Active(viewID) {
		m.Deactivate(viewID, nil, false)
		return
	}
	expiry := ExpireOnInput
	if extend {
		expiry = ExpireOnToggle
	}
	m.Activate(viewID, Options{Axis: AxisBoth, Expiry: expiry})
}

// scheduleLocked replaces any outstanding deactivation timer with a new
// one. The sequence number keeps a stopped-but-already-fired timer from
// deactivating a later activation.
func (m *Manager) scheduleLocked(viewID string, st *viewState, d time.Duration) {
	if st.timer != nil {
		st.timer.Stop()
	}
	st.timerSeq++
	seq := st.timerSeq
	st.timer = time.AfterFunc(d, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if st.timerSeq != seq {
			return
		}
		st.timer = nil
		m.deactivateLocked(viewID, st, nil, true)
	})
}

func (m *Manager) reportPoint(viewID string) {
	if m.caps.Points == nil || m.caps.Status == nil {
		return
	}
	p := m.caps.Points.Point(viewID)
	m.caps.Status.Echo(fmt.Sprintf("Point: %d", p.Offset))
}
