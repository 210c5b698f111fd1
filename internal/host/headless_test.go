package host_test

import (
	"testing"
	"time"

	"github.com/dshills/crosshair/internal/host"
	"github.com/dshills/crosshair/internal/style"
)

func TestHeadlessRowHighlight(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	if caps.Rows.Engaged() {
		t.Error("row highlight should start disengaged")
	}

	caps.Rows.Engage()
	if !caps.Rows.Engaged() {
		t.Error("expected row highlight engaged")
	}

	st := style.Style{Background: style.RGB(0xff, 0x87, 0x00)}
	caps.Rows.SetStyle(st)
	if !h.RowStyle().Equals(st) {
		t.Errorf("RowStyle = %+v, want %+v", h.RowStyle(), st)
	}

	caps.Rows.ResetStyle()
	if !h.RowStyle().IsZero() {
		t.Error("ResetStyle should restore the default row style")
	}

	caps.Rows.Disengage()
	if caps.Rows.Engaged() {
		t.Error("expected row highlight disengaged")
	}
}

func TestHeadlessColumnHighlightPerView(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	caps.Columns.Engage("a")
	if !caps.Columns.Engaged("a") {
		t.Error("expected column highlight engaged for view a")
	}
	if caps.Columns.Engaged("b") {
		t.Error("view b must not be affected by view a")
	}

	caps.Columns.Disengage("a")
	if caps.Columns.Engaged("a") {
		t.Error("expected column highlight disengaged for view a")
	}
}

func TestHeadlessScrollbarDefaults(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	if !caps.Scrollbar.Visible("v") {
		t.Error("scrollbar should default to visible")
	}

	caps.Scrollbar.SetVisible("v", false)
	if caps.Scrollbar.Visible("v") {
		t.Error("expected scrollbar hidden")
	}

	caps.Scrollbar.Redraw("v")
	if h.ScrollbarRedraws("v") != 1 {
		t.Errorf("redraws = %d, want 1", h.ScrollbarRedraws("v"))
	}
}

func TestHeadlessIdleDelay(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	if d := caps.Idle.Delay("v"); d != host.DefaultIdleDelay {
		t.Errorf("default idle delay = %v, want %v", d, host.DefaultIdleDelay)
	}

	caps.Idle.SetDelay("v", 3*time.Second)
	if d := caps.Idle.Delay("v"); d != 3*time.Second {
		t.Errorf("idle delay = %v, want 3s", d)
	}
}

func TestHeadlessEchoBypassesHistory(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	caps.Status.Echo("Point: 7")
	caps.Status.Log("file saved")

	if got := h.Area().Current(); got != "file saved" {
		t.Errorf("Current = %q", got)
	}
	hist := h.Area().History()
	if len(hist) != 1 || hist[0] != "file saved" {
		t.Errorf("history = %v, want only the logged message", hist)
	}
}

func TestHeadlessMarkTracksEdits(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	h.SetPoint("v", host.Point{Offset: 100, Line: 4, Col: 10})
	m := caps.Points.Mark("v")
	if m.Offset() != 100 {
		t.Fatalf("mark offset = %d, want 100", m.Offset())
	}

	// Insert 5 bytes before the mark: mark shifts right.
	h.ApplyEdit("v", 50, 5)
	if m.Offset() != 105 {
		t.Errorf("mark offset after insert = %d, want 105", m.Offset())
	}

	// Insert after the mark: no movement.
	h.ApplyEdit("v", 200, 5)
	if m.Offset() != 105 {
		t.Errorf("mark offset after trailing insert = %d, want 105", m.Offset())
	}

	// Delete a region spanning the mark: mark clamps to the edit point.
	h.ApplyEdit("v", 90, -50)
	if m.Offset() != 90 {
		t.Errorf("mark offset after spanning delete = %d, want 90", m.Offset())
	}

	// Cursor follows the same rules.
	if p := caps.Points.Point("v"); p.Offset != 90 {
		t.Errorf("point offset = %d, want 90", p.Offset)
	}
}

func TestHeadlessCounters(t *testing.T) {
	h := host.NewHeadless()
	caps := h.Capabilities()

	caps.Display.Sync()
	caps.Display.Sync()
	if h.SyncCount() != 2 {
		t.Errorf("SyncCount = %d, want 2", h.SyncCount())
	}

	caps.Rows.Refresh("v")
	if h.RefreshCount() != 1 {
		t.Errorf("RefreshCount = %d, want 1", h.RefreshCount())
	}
}
