package hook_test

import (
	"testing"

	"github.com/dshills/crosshair/internal/hook"
	"github.com/dshills/crosshair/internal/input"
)

// TestPreInputFunc verifies the PreInputFunc adapter.
func TestPreInputFunc(t *testing.T) {
	called := false
	h := hook.NewPreInputFunc("test-pre", 100, func(ev *input.Event) bool {
		called = true
		return true
	})

	if h.Name() != "test-pre" {
		t.Errorf("expected name 'test-pre', got %q", h.Name())
	}
	if h.Priority() != 100 {
		t.Errorf("expected priority 100, got %d", h.Priority())
	}

	ev := &input.Event{Kind: input.KindKey, Rune: 'x'}
	if !h.PreInput(ev) {
		t.Error("expected PreInput to return true")
	}
	if !called {
		t.Error("expected PreInput to be called")
	}
}

// TestPreInputFuncNilFn verifies a nil function does not consume events.
func TestPreInputFuncNilFn(t *testing.T) {
	h := hook.NewPreInputFunc("nil-fn", 0, nil)
	if !h.PreInput(&input.Event{Kind: input.KindKey}) {
		t.Error("nil-fn hook should not consume the event")
	}
}

// TestPostInputFunc verifies the PostInputFunc adapter.
func TestPostInputFunc(t *testing.T) {
	var got *input.Event
	h := hook.NewPostInputFunc("test-post", 200, func(ev *input.Event) {
		got = ev
	})

	if h.Name() != "test-post" {
		t.Errorf("expected name 'test-post', got %q", h.Name())
	}
	if h.Priority() != 200 {
		t.Errorf("expected priority 200, got %d", h.Priority())
	}

	ev := &input.Event{Kind: input.KindPaste}
	h.PostInput(ev)
	if got != ev {
		t.Error("expected PostInput to receive the event")
	}
}
