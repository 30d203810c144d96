package pong

import (
	"math"
	"math/rand"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// Difficulty selects the CPU controller preset.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	difficultyCount
)

// String returns the display name for the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Guard against division blow-up when the ball moves almost vertically;
// the intercept time becomes large-but-finite instead of infinite.
const cpuVelEpsilon = 1e-6

// CPU is a predictive controller for one paddle. Each update it either
// extrapolates the ball to its paddle's x-coordinate (folding the predicted
// y back into the field to account for wall bounces) or, when the ball is
// moving away, holds position. The movement command is proportional to the
// tracking error with the inverse reaction time as gain.
type CPU struct {
	paddle   *Paddle
	reaction float64
	errMag   float64
	fieldW   float64
	fieldH   float64
	rng      *rand.Rand
}

// NewCPU creates a controller for the given paddle.
func NewCPU(paddle *Paddle, prof config.CPUProfile, fieldW, fieldH float64, rng *rand.Rand) *CPU {
	return &CPU{
		paddle:   paddle,
		reaction: prof.Reaction,
		errMag:   prof.Error,
		fieldW:   fieldW,
		fieldH:   fieldH,
		rng:      rng,
	}
}

// Update computes the paddle's velocity command for this tick.
func (c *CPU) Update(ball *Ball) {
	target := c.paddle.Y

	if c.ballApproaching(ball) {
		target = c.predictY(ball)
		target += (c.rng.Float64()*2 - 1) * c.errMag * c.fieldH
	}

	diff := target - c.paddle.Y
	reaction := math.Max(c.reaction, cpuVelEpsilon)
	c.paddle.SetVelocity(diff / reaction)
}

// ballApproaching reports whether the ball is moving toward the paddle's
// side of the field.
func (c *CPU) ballApproaching(ball *Ball) bool {
	if ball.Vel.X > 0 {
		return c.paddle.X > c.fieldW/2
	}
	if ball.Vel.X < 0 {
		return c.paddle.X < c.fieldW/2
	}
	return false
}

// predictY extrapolates the ball along its current velocity to the paddle's
// x-coordinate and folds the result back into the field.
func (c *CPU) predictY(ball *Ball) float64 {
	vx := math.Abs(ball.Vel.X)
	if vx < cpuVelEpsilon {
		vx = cpuVelEpsilon
	}
	t := math.Abs(c.paddle.X-ball.Pos.X) / vx
	predicted := ball.Pos.Y + ball.Vel.Y*t
	return core.FoldY(predicted, c.fieldH)
}
