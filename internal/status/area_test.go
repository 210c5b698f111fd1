package status_test

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/dshills/crosshair/internal/status"
)

func TestEchoIsTransient(t *testing.T) {
	a := status.NewArea()

	a.Echo("Point: 42")
	if got := a.Current(); got != "Point: 42" {
		t.Errorf("Current() = %q, want %q", got, "Point: 42")
	}
	if h := a.History(); len(h) != 0 {
		t.Errorf("echoed message leaked into history: %v", h)
	}

	a.Echo("Point: 43")
	if got := a.Current(); got != "Point: 43" {
		t.Errorf("Current() = %q, want %q", got, "Point: 43")
	}
}

func TestLogIsPersisted(t *testing.T) {
	a := status.NewArea()

	a.Log("opened file")
	a.Echo("Point: 1")
	a.Log("saved file")

	h := a.History()
	if len(h) != 2 || h[0] != "opened file" || h[1] != "saved file" {
		t.Errorf("history = %v, want [opened file, saved file]", h)
	}
	if got := a.Current(); got != "saved file" {
		t.Errorf("Current() = %q, want %q", got, "saved file")
	}
}

func TestClear(t *testing.T) {
	a := status.NewArea()
	a.Log("kept")
	a.Clear()

	if a.Current() != "" {
		t.Error("Clear should remove the current message")
	}
	if h := a.History(); len(h) != 1 || h[0] != "kept" {
		t.Errorf("Clear must not touch history, got %v", h)
	}
}

func TestHistoryCapped(t *testing.T) {
	a := status.NewArea()
	for i := 0; i < status.DefaultHistorySize+10; i++ {
		a.Log("msg")
	}
	if n := len(a.History()); n != status.DefaultHistorySize {
		t.Errorf("history length = %d, want %d", n, status.DefaultHistorySize)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"combining marks kept whole", "ééé", 2, "é…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := status.Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if tt.width > 0 && uniseg.StringWidth(got) > tt.width {
				t.Errorf("Truncate result %q wider than %d cells", got, tt.width)
			}
		})
	}
}

func TestTruncateWide(t *testing.T) {
	// CJK runes are two cells; a half-cut rune must be dropped.
	got := status.Truncate(strings.Repeat("漢", 4), 5)
	if uniseg.StringWidth(got) > 5 {
		t.Errorf("result %q exceeds 5 cells", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
