package pong

import (
	"math"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// Ball is a moving circle. Speed is the magnitude the velocity is kept at;
// it grows with every paddle hit and resets only when a new ball is
// created. SlowFactor scales effective movement while slow_ball is active.
type Ball struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     float64
	Speed      float64
	SlowFactor float64

	fieldH float64
}

// NewBall creates a stationary ball at the given position with base speed.
func NewBall(x, y float64, cfg config.BallConfig, fieldH float64) *Ball {
	return &Ball{
		Pos:        core.Vec2{X: x, Y: y},
		Radius:     cfg.Radius,
		Speed:      cfg.BaseSpeed,
		SlowFactor: 1.0,
		fieldH:     fieldH,
	}
}

// Launch gives the ball velocity at the given angle toward the given side.
func (b *Ball) Launch(dir Side, angle float64) {
	v := core.Vec2{X: math.Cos(angle) * float64(dir), Y: math.Sin(angle)}
	b.Vel = v.Normalize().Scale(b.Speed)
}

// Update integrates the ball position and bounces elastically off the top
// and bottom walls: position clamps to the bound, the y velocity flips,
// speed is unchanged.
func (b *Ball) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt * b.SlowFactor))

	if b.Pos.Y-b.Radius <= 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y+b.Radius >= b.fieldH {
		b.Pos.Y = b.fieldH - b.Radius
		b.Vel.Y = -b.Vel.Y
	}
}

// Bounds returns the ball's axis-aligned collision box.
func (b *Ball) Bounds() core.Rect {
	return core.RectAround(b.Pos, b.Radius*2, b.Radius*2)
}
