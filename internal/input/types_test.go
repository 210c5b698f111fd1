package input_test

import (
	"testing"

	"github.com/dshills/crosshair/internal/input"
)

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind input.EventKind
		want string
	}{
		{input.KindKey, "key"},
		{input.KindMouse, "mouse"},
		{input.KindPaste, "paste"},
		{input.KindResize, "resize"},
		{input.KindFocus, "focus"},
		{input.EventKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFrameSwitch(t *testing.T) {
	tests := []struct {
		name string
		ev   *input.Event
		want bool
	}{
		{"nil event", nil, false},
		{"focus event", &input.Event{Kind: input.KindFocus}, true},
		{"key event", &input.Event{Kind: input.KindKey, Rune: 'a'}, false},
		{"resize event", &input.Event{Kind: input.KindResize}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.FrameSwitch(); got != tt.want {
				t.Errorf("FrameSwitch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionWithCount(t *testing.T) {
	a := input.Action{Name: "crosshair.flash"}
	if a.HasCount {
		t.Error("new action should not have a count")
	}

	b := a.WithCount(5)
	if !b.HasCount || b.Count != 5 {
		t.Errorf("WithCount(5) = {Count: %d, HasCount: %v}, want {5, true}", b.Count, b.HasCount)
	}
	if a.HasCount {
		t.Error("WithCount must not mutate the original action")
	}
}

func TestActionSourceString(t *testing.T) {
	if got := input.SourcePlugin.String(); got != "plugin" {
		t.Errorf("SourcePlugin.String() = %q, want %q", got, "plugin")
	}
	if got := input.ActionSource(200).String(); got != "unknown" {
		t.Errorf("unknown source String() = %q, want %q", got, "unknown")
	}
}
