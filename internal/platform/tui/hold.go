package tui

import (
	"time"

	"github.com/paddlegames/tui-pong/internal/core"
)

// Terminals deliver key repeats, never key-up events. A movement key is
// treated as held while repeats keep arriving; once none is seen for
// holdTimeout the tracker synthesizes the release edge the simulation
// expects.
const holdTimeout = 150 * time.Millisecond

// holdTracker reconstructs press/release edges for movement keys from
// key-repeat timing.
type holdTracker struct {
	lastSeen map[core.Action]time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{lastSeen: make(map[core.Action]time.Time)}
}

// KeyDown records a key event for the action. Returns true if this is a new
// press rather than a repeat of a key already considered held.
func (h *holdTracker) KeyDown(a core.Action, now time.Time) bool {
	_, held := h.lastSeen[a]
	h.lastSeen[a] = now
	return !held
}

// Expire releases every action whose repeats stopped arriving and records
// the release edges into the frame.
func (h *holdTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > holdTimeout {
			delete(h.lastSeen, a)
			frame.Release(a)
		}
	}
}

// ReleaseAll drops all held state, recording release edges into the frame.
func (h *holdTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.lastSeen {
		delete(h.lastSeen, a)
		frame.Release(a)
	}
}
