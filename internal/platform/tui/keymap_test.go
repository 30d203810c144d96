package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paddlegames/tui-pong/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func TestMapKeyDuringPlay(t *testing.T) {
	km := DefaultKeyMap()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionLeftUp},
		{"s", core.ActionLeftDown},
		{"up", core.ActionRightUp},
		{"down", core.ActionRightDown},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"x", core.ActionNone},
	}
	for _, tc := range cases {
		if got := km.MapKey(keyMsg(tc.key), false); got != tc.want {
			t.Errorf("MapKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestMapKeyDuringMenu(t *testing.T) {
	km := DefaultKeyMap()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionMenuUp},
		{"up", core.ActionMenuUp},
		{"s", core.ActionMenuDown},
		{"down", core.ActionMenuDown},
		{"enter", core.ActionConfirm},
		{"q", core.ActionQuit},
		{"p", core.ActionNone},
	}
	for _, tc := range cases {
		if got := km.MapKey(keyMsg(tc.key), true); got != tc.want {
			t.Errorf("MapKey(%q, menu) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestHoldTrackerSynthesizesRelease(t *testing.T) {
	h := newHoldTracker()
	now := time.Now()

	if !h.KeyDown(core.ActionLeftUp, now) {
		t.Fatal("first key event should be a press edge")
	}
	// Repeats inside the timeout are not new presses
	if h.KeyDown(core.ActionLeftUp, now.Add(50*time.Millisecond)) {
		t.Error("key repeat reported as a new press")
	}

	frame := core.NewInputFrame()
	h.Expire(now.Add(100*time.Millisecond), &frame)
	if frame.WasReleased(core.ActionLeftUp) {
		t.Error("release synthesized while repeats are still fresh")
	}

	h.Expire(now.Add(300*time.Millisecond), &frame)
	if !frame.WasReleased(core.ActionLeftUp) {
		t.Error("no release synthesized after repeats stopped")
	}

	// Once released, the next key event is a fresh press
	if !h.KeyDown(core.ActionLeftUp, now.Add(400*time.Millisecond)) {
		t.Error("key after release not reported as a new press")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := newHoldTracker()
	now := time.Now()
	h.KeyDown(core.ActionLeftUp, now)
	h.KeyDown(core.ActionRightDown, now)

	frame := core.NewInputFrame()
	h.ReleaseAll(&frame)

	if !frame.WasReleased(core.ActionLeftUp) || !frame.WasReleased(core.ActionRightDown) {
		t.Error("ReleaseAll did not record release edges for all held keys")
	}
	if h.KeyDown(core.ActionLeftUp, now.Add(time.Millisecond)) != true {
		t.Error("held state not cleared by ReleaseAll")
	}
}
