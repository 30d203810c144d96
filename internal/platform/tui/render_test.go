package tui

import (
	"strings"
	"testing"

	"github.com/paddlegames/tui-pong/internal/core"
)

func testFrame() *core.Frame {
	f := core.NewFrame(1000, 600)
	f.HUD = core.HUD{ScoreL: 3, ScoreR: 5, Players: 1, Difficulty: 1}
	return f
}

func TestCellGridBounds(t *testing.T) {
	g := newCellGrid(10, 5)

	// Out-of-bounds writes are ignored
	g.set(-1, 0, 'x', core.ColorWhite)
	g.set(10, 0, 'x', core.ColorWhite)
	g.set(0, 5, 'x', core.ColorWhite)
	for _, r := range g.runes {
		if r != ' ' {
			t.Fatal("out-of-bounds write landed in the grid")
		}
	}

	g.set(3, 2, '█', core.ColorAccent)
	if g.runes[2*10+3] != '█' {
		t.Error("in-bounds write missing")
	}

	g.clear()
	if g.runes[2*10+3] != ' ' {
		t.Error("clear did not reset cells")
	}
}

func TestRenderOutputShape(t *testing.T) {
	r := NewRenderer(60, 20)
	f := testFrame()
	f.Push(core.FilledRect(core.NewRect(36, 245, 14, 110), core.ColorWhite, 6))
	f.Push(core.FilledCircle(core.Vec2{X: 500, Y: 300}, 10, core.ColorAccent))

	out := r.Render(f, "help")

	// Score line + playfield rows + help bar
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Errorf("rendered %d lines for a 20-row terminal, want 20", len(lines))
	}
	if !strings.Contains(lines[0], "3 : 5") {
		t.Errorf("score line missing, got %q", lines[0])
	}
	if !strings.Contains(out, "█") {
		t.Error("no filled cells for the paddle")
	}
}

func TestRenderPaddlePosition(t *testing.T) {
	r := NewRenderer(100, 32)
	f := testFrame()
	// Left paddle flush against the left field edge
	f.Push(core.FilledRect(core.NewRect(0, 250, 14, 100), core.ColorWhite, 6))

	r.Render(f, "")

	// The paddle's cells land in the left fifth of the grid
	found := false
	for y := 0; y < r.grid.h; y++ {
		for x := 0; x < 5; x++ {
			if r.grid.runes[y*r.grid.w+x] == '█' {
				found = true
			}
		}
	}
	if !found {
		t.Error("left-edge rectangle not rasterized at the left edge")
	}
}

func TestRenderAlphaRamp(t *testing.T) {
	r := NewRenderer(80, 24)
	f := testFrame()
	f.Push(core.TranslucentSquare(core.Vec2{X: 100, Y: 100}, 4, core.ColorAccent, 1.0))
	f.Push(core.TranslucentSquare(core.Vec2{X: 500, Y: 300}, 4, core.ColorAccent, 0.1))

	out := r.Render(f, "")

	if !strings.ContainsRune(out, '█') {
		t.Error("opaque particle not rendered with the solid rune")
	}
	if !strings.ContainsRune(out, '░') {
		t.Error("faded particle not rendered with the lightest rune")
	}
}

func TestRenderMenu(t *testing.T) {
	r := NewRenderer(80, 24)
	f := testFrame()
	f.HUD.MenuActive = true
	f.HUD.MenuSelection = 2
	f.HUD.Players = 2

	out := r.Render(f, "")

	for _, want := range []string{"P O N G", "Mode: 2P", "Difficulty:", "Start", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q", want)
		}
	}
	if !strings.Contains(out, "> Start") {
		t.Error("cursor not on the selected entry")
	}
}

func TestRenderWinnerBanner(t *testing.T) {
	r := NewRenderer(80, 24)
	f := testFrame()
	f.HUD.MenuActive = true
	f.HUD.Winner = 2
	f.HUD.ScoreL = 4
	f.HUD.ScoreR = 7

	out := r.Render(f, "")
	if !strings.Contains(out, "Right side wins 4 : 7") {
		t.Error("winner banner missing or wrong")
	}
}

func TestRenderTinyTerminal(t *testing.T) {
	// Degenerate sizes must not panic
	r := NewRenderer(1, 1)
	f := testFrame()
	f.Push(core.FilledCircle(core.Vec2{X: 500, Y: 300}, 10, core.ColorAccent))
	_ = r.Render(f, "help text longer than the terminal")

	r.Resize(0, 0)
	_ = r.Render(f, "")
}
