package pong

import (
	"math/rand"
	"testing"

	"github.com/paddlegames/tui-pong/internal/config"
)

func testPaddleConfig() config.PaddleConfig {
	return config.DefaultPongConfig().Paddle
}

func TestPaddleStaysInBand(t *testing.T) {
	cfg := testPaddleConfig()
	fieldH := 600.0
	p := NewPaddle(36, fieldH/2, cfg, fieldH)

	rng := rand.New(rand.NewSource(7))
	dt := 1.0 / 120.0

	for i := 0; i < 5000; i++ {
		p.SetVelocity((rng.Float64()*2 - 1) * 2 * cfg.Speed)
		p.Update(dt)

		lo := p.H/2 + cfg.Margin
		hi := fieldH - p.H/2 - cfg.Margin
		if p.Y < lo || p.Y > hi {
			t.Fatalf("tick %d: paddle y=%v outside [%v, %v]", i, p.Y, lo, hi)
		}
	}
}

func TestPaddleVelocityClampedToCap(t *testing.T) {
	cfg := testPaddleConfig()
	p := NewPaddle(36, 300, cfg, 600)

	p.SetVelocity(10000)
	if p.Vel != cfg.Speed {
		t.Errorf("velocity = %v, want cap %v", p.Vel, cfg.Speed)
	}
	p.SetVelocity(-10000)
	if p.Vel != -cfg.Speed {
		t.Errorf("velocity = %v, want -cap %v", p.Vel, -cfg.Speed)
	}

	// Raising the cap widens the clamp
	p.SetSpeedCap(cfg.Speed * 1.6)
	p.SetVelocity(10000)
	if p.Vel != cfg.Speed*1.6 {
		t.Errorf("velocity = %v, want boosted cap %v", p.Vel, cfg.Speed*1.6)
	}
	p.ResetSpeedCap()
	if p.Speed != cfg.Speed {
		t.Errorf("speed cap = %v after reset, want %v", p.Speed, cfg.Speed)
	}
}

func TestPaddleHeightResize(t *testing.T) {
	cfg := testPaddleConfig()
	p := NewPaddle(36, 300, cfg, 600)

	p.SetHeight(cfg.Height * 1.6)
	if p.H != cfg.Height*1.6 {
		t.Errorf("height = %v, want %v", p.H, cfg.Height*1.6)
	}
	// Resize keeps the center
	if p.Y != 300 {
		t.Errorf("center moved to %v on resize", p.Y)
	}
	b := p.Bounds()
	if c := b.Center(); c.Y != 300 {
		t.Errorf("bounds center = %v, want 300", c.Y)
	}

	p.ResetHeight()
	if p.H != cfg.Height {
		t.Errorf("height = %v after reset, want %v", p.H, cfg.Height)
	}
}

func TestPaddleGrownHeightTightensBand(t *testing.T) {
	cfg := testPaddleConfig()
	fieldH := 600.0
	p := NewPaddle(36, 300, cfg, fieldH)
	p.SetHeight(cfg.Height * 1.6)

	// Drive to the top; the clamp band must account for the new height
	p.SetVelocity(-p.Speed)
	for i := 0; i < 1000; i++ {
		p.Update(1.0 / 120.0)
	}
	want := p.H/2 + cfg.Margin
	if p.Y != want {
		t.Errorf("paddle top rest y = %v, want %v", p.Y, want)
	}
}
