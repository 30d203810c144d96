package pong

import (
	"math"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// resolver handles paddle-ball reflection and out-of-bounds scoring.
type resolver struct {
	fieldW      float64
	maxAngle    float64 // Max reflection angle, radians
	speedGrowth float64
	scoreMargin float64
}

func newResolver(field config.FieldConfig, gameplay config.GameplayConfig, ball config.BallConfig) resolver {
	return resolver{
		fieldW:      field.Width,
		maxAngle:    gameplay.MaxBounceAngle * math.Pi / 180,
		speedGrowth: ball.SpeedGrowth,
		scoreMargin: gameplay.ScoreMargin,
	}
}

// resolvePaddleHit tests the ball against both paddles, left first, and
// resolves at most one hit. On hit the exit angle is proportional to the
// offset from the paddle center, the exit direction points away from the
// hitting paddle's half of the field, speed escalates by the growth factor
// (no cap), and the ball is repositioned just outside the paddle edge so it
// cannot tunnel or double-hit.
func (r resolver) resolvePaddleHit(b *Ball, left, right *Paddle) bool {
	for _, paddle := range []*Paddle{left, right} {
		if !b.Bounds().Intersects(paddle.Bounds()) {
			continue
		}

		relY := core.Clamp((b.Pos.Y-paddle.Y)/(paddle.H/2), -1, 1)
		angle := relY * r.maxAngle

		// Exit direction comes from which half of the field the paddle
		// sits in, not from which paddle matched. Equivalent while the
		// paddles stay on their own halves.
		dir := 1.0
		if paddle.X >= r.fieldW/2 {
			dir = -1.0
		}

		b.Speed *= r.speedGrowth
		v := core.Vec2{X: math.Cos(angle) * dir, Y: math.Sin(angle)}
		b.Vel = v.Normalize().Scale(b.Speed)
		b.Pos.X = paddle.X + dir*(paddle.W/2+b.Radius+2)
		return true
	}
	return false
}

// checkScore reports whether the ball has left the playfield far enough to
// end the rally, and which side earned the point.
func (r resolver) checkScore(b *Ball) (scorer Side, ok bool) {
	if b.Pos.X < -r.scoreMargin {
		return SideRight, true
	}
	if b.Pos.X > r.fieldW+r.scoreMargin {
		return SideLeft, true
	}
	return 0, false
}
