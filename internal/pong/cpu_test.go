package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

func testCPU(prof config.CPUProfile, seed int64) (*CPU, *Paddle) {
	cfg := config.DefaultPongConfig()
	p := NewPaddle(cfg.Field.Width-cfg.Paddle.Offset, cfg.Field.Height/2, cfg.Paddle, cfg.Field.Height)
	c := NewCPU(p, prof, cfg.Field.Width, cfg.Field.Height, rand.New(rand.NewSource(seed)))
	return c, p
}

func TestCPUHoldsWhenBallReceding(t *testing.T) {
	c, p := testCPU(config.CPUProfile{Reaction: 0.12, Error: 0.08}, 1)

	// Right-side paddle, ball moving left: no chase
	b := NewBall(500, 100, config.DefaultPongConfig().Ball, 600)
	b.Vel = core.Vec2{X: -300, Y: 50}

	c.Update(b)
	if p.Vel != 0 {
		t.Errorf("paddle velocity = %v while ball recedes, want 0", p.Vel)
	}
}

func TestCPUChasesApproachingBall(t *testing.T) {
	c, p := testCPU(config.CPUProfile{Reaction: 0.12, Error: 0}, 1)

	b := NewBall(500, 500, config.DefaultPongConfig().Ball, 600)
	b.Vel = core.Vec2{X: 300, Y: 0}

	c.Update(b)
	if p.Vel <= 0 {
		t.Errorf("paddle velocity = %v, want downward chase toward y=500", p.Vel)
	}
}

func TestCPUPredictionFoldsOffWalls(t *testing.T) {
	cfg := config.DefaultPongConfig()
	c, _ := testCPU(config.CPUProfile{Reaction: 0.12, Error: 0}, 1)

	// Ball aimed up: the straight-line intercept is above the field,
	// the folded prediction reflects back inside.
	b := NewBall(500, 50, cfg.Ball, cfg.Field.Height)
	b.Vel = core.Vec2{X: 400, Y: -100}

	got := c.predictY(b)
	straight := b.Pos.Y + b.Vel.Y*math.Abs(c.paddle.X-b.Pos.X)/b.Vel.X
	if straight >= 0 {
		t.Fatalf("setup broken: straight-line prediction %v should be above the field", straight)
	}
	if got < 0 || got > cfg.Field.Height {
		t.Errorf("folded prediction %v outside field", got)
	}
	if got != -straight {
		t.Errorf("folded prediction = %v, want mirror %v", got, -straight)
	}
}

func TestCPUNearVerticalBallDoesNotBlowUp(t *testing.T) {
	cfg := config.DefaultPongConfig()
	c, p := testCPU(config.CPUProfile{Reaction: 0.12, Error: 0}, 1)

	b := NewBall(500, 300, cfg.Ball, cfg.Field.Height)
	b.Vel = core.Vec2{X: 1e-12, Y: 400}

	c.Update(b)
	if math.IsNaN(p.Vel) || math.IsInf(p.Vel, 0) {
		t.Errorf("paddle velocity = %v, want finite", p.Vel)
	}
}

func TestCPUDeterministicWithFixedSeed(t *testing.T) {
	cfg := config.DefaultPongConfig()
	run := func() []float64 {
		c, p := testCPU(cfg.CPU.Medium, 42)
		b := NewBall(300, 200, cfg.Ball, cfg.Field.Height)
		b.Vel = core.Vec2{X: 350, Y: 120}

		vels := make([]float64, 0, 50)
		for i := 0; i < 50; i++ {
			c.Update(b)
			p.Update(1.0 / 120.0)
			b.Update(1.0 / 120.0)
			vels = append(vels, p.Vel)
		}
		return vels
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: velocity diverged %v vs %v with identical seed", i, a[i], b[i])
		}
	}
}

func TestDifficultyString(t *testing.T) {
	cases := map[Difficulty]string{
		DifficultyEasy:   "Easy",
		DifficultyMedium: "Medium",
		DifficultyHard:   "Hard",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("Difficulty(%d).String() = %q, want %q", d, got, want)
		}
	}
}
