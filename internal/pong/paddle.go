// Package pong implements the two-paddle ball game simulation: entities,
// collision and scoring resolution, CPU opponent, power-up effects, and the
// session state machine. It contains pure logic with no terminal or timing
// dependencies; the platform layer drives it at a fixed tick rate.
package pong

import (
	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// Side identifies a player's half of the field. The numeric values double
// as horizontal direction signs in velocity math.
type Side int

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a vertically moving bat with a fixed x position. Height and
// speed cap are mutable through power-up effects and restorable to their
// base values.
type Paddle struct {
	X, Y float64
	W, H float64

	Vel   float64 // Signed vertical velocity, units/sec
	Speed float64 // Current velocity cap

	baseH     float64
	baseSpeed float64
	fieldH    float64
	margin    float64
}

// NewPaddle creates a paddle centered vertically at y with its x fixed.
func NewPaddle(x, y float64, cfg config.PaddleConfig, fieldH float64) *Paddle {
	return &Paddle{
		X:         x,
		Y:         y,
		W:         cfg.Width,
		H:         cfg.Height,
		Speed:     cfg.Speed,
		baseH:     cfg.Height,
		baseSpeed: cfg.Speed,
		fieldH:    fieldH,
		margin:    cfg.Margin,
	}
}

// SetVelocity sets the signed movement intent, clamped to the current
// speed cap.
func (p *Paddle) SetVelocity(v float64) {
	p.Vel = core.Clamp(v, -p.Speed, p.Speed)
}

// Update integrates the paddle position and clamps it into the legal band
// between the walls.
func (p *Paddle) Update(dt float64) {
	p.Y += p.Vel * dt
	half := p.H / 2
	p.Y = core.Clamp(p.Y, half+p.margin, p.fieldH-half-p.margin)
}

// SetHeight resizes the collision box around the current center.
func (p *Paddle) SetHeight(h float64) {
	p.H = h
}

// ResetHeight restores the base height.
func (p *Paddle) ResetHeight() {
	p.H = p.baseH
}

// SetSpeedCap changes the velocity cap.
func (p *Paddle) SetSpeedCap(speed float64) {
	p.Speed = speed
}

// ResetSpeedCap restores the base velocity cap.
func (p *Paddle) ResetSpeedCap() {
	p.Speed = p.baseSpeed
}

// BaseHeight returns the paddle's original height.
func (p *Paddle) BaseHeight() float64 {
	return p.baseH
}

// BaseSpeed returns the paddle's original speed cap.
func (p *Paddle) BaseSpeed() float64 {
	return p.baseSpeed
}

// Bounds returns the paddle's axis-aligned collision box.
func (p *Paddle) Bounds() core.Rect {
	return core.RectAround(core.Vec2{X: p.X, Y: p.Y}, p.W, p.H)
}
