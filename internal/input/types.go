package input

// EventKind classifies an input event delivered by the host.
type EventKind uint8

const (
	// KindKey indicates a keyboard event.
	KindKey EventKind = iota
	// KindMouse indicates a mouse event.
	KindMouse
	// KindPaste indicates a bracketed paste event.
	KindPaste
	// KindResize indicates a terminal resize event.
	KindResize
	// KindFocus indicates a window/frame focus change.
	KindFocus
)

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindPaste:
		return "paste"
	case KindResize:
		return "resize"
	case KindFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Event is a single discrete input event.
// Events flow through the hook pipeline before and after normal handling.
type Event struct {
	// Kind classifies the event.
	Kind EventKind

	// ViewID identifies the view the event is directed at.
	ViewID string

	// Rune is the printable rune for key events (0 if none).
	Rune rune

	// Key is a symbolic key name for non-printable keys (e.g., "up", "esc").
	Key string

	// Width and Height carry the new terminal size for resize events.
	Width, Height int

	// Focused reports whether focus was gained (true) or lost for focus events.
	Focused bool
}

// FrameSwitch reports whether the event is a change of window/frame focus
// rather than a content-editing or navigation action. A nil event is not a
// frame switch.
func (e *Event) FrameSwitch() bool {
	return e != nil && e.Kind == KindFocus
}

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourcePlugin indicates the action originated from a plugin.
	SourcePlugin
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePlugin:
		return "plugin"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Action represents a command to be executed by an action handler.
type Action struct {
	// Name is the command identifier (e.g., "crosshair.toggle").
	Name string

	// ViewID identifies the view the action applies to.
	ViewID string

	// Count is the numeric modifier (from a count prefix).
	// It is meaningful only when HasCount is true.
	Count int

	// HasCount reports whether a numeric modifier was supplied.
	HasCount bool

	// Source indicates where this action originated.
	Source ActionSource
}

// WithCount returns a copy of the action with the given numeric modifier.
func (a Action) WithCount(count int) Action {
	a.Count = count
	a.HasCount = true
	return a
}
