package pong

import (
	"math"
	"math/rand"

	"github.com/paddlegames/tui-pong/internal/core"
)

// Particle burst tuning. Particles are pure decoration: they drift, fade
// out, and never interact with physics.
const (
	particleMinSpeed = 60
	particleMaxSpeed = 380
	particleMinTTL   = 0.35
	particleMaxTTL   = 0.9
	particleSize     = 4

	hitBurstCount   = 12
	scoreBurstCount = 30
)

// Particle is a fading dot spawned by collision and scoring events.
type Particle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	TTL    float64
	MaxTTL float64
	Color  core.Color
}

// Update advances the particle and counts down its lifetime.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.TTL -= dt
}

// Alive reports whether the particle should still be drawn.
func (p *Particle) Alive() bool {
	return p.TTL > 0
}

// Alpha returns the fade value in [0, 1] derived from remaining lifetime.
func (p *Particle) Alpha() float64 {
	if p.MaxTTL <= 0 {
		return 0
	}
	return core.Clamp(p.TTL/p.MaxTTL, 0, 1)
}

// newBurst creates count particles radiating from pos in random directions.
func newBurst(rng *rand.Rand, pos core.Vec2, color core.Color, count int) []*Particle {
	burst := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		ang := rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		ttl := particleMinTTL + rng.Float64()*(particleMaxTTL-particleMinTTL)
		burst = append(burst, &Particle{
			Pos:    pos,
			Vel:    core.FromAngle(ang, speed),
			TTL:    ttl,
			MaxTTL: ttl,
			Color:  color,
		})
	}
	return burst
}
