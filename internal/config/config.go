// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong simulation.
package config

// PongConfig contains all tunable parameters for a match.
// Values are in field units (the simulation runs on a 1000x600 field
// regardless of terminal size) and seconds.
type PongConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	CPU      CPUConfig      `yaml:"cpu"`
}

// FieldConfig defines the virtual playfield dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Velocity cap, units/sec
	Offset float64 `yaml:"offset"` // Paddle center distance from field edge
	Margin float64 `yaml:"margin"` // Gap kept between paddle and top/bottom walls
}

// BallConfig defines ball geometry and speed behavior.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	BaseSpeed   float64 `yaml:"base_speed"`   // Units/sec at serve
	SpeedGrowth float64 `yaml:"speed_growth"` // Multiplier per paddle hit
}

// PowerUpsConfig defines power-up spawning and effect parameters.
type PowerUpsConfig struct {
	Size          float64 `yaml:"size"`           // Side length of the pickup square
	Duration      float64 `yaml:"duration"`       // Effect duration, seconds
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	TTL           float64 `yaml:"ttl"`            // Seconds before an unclaimed pickup vanishes
	InsetX        float64 `yaml:"inset_x"`        // Horizontal spawn inset from field edges
	InsetY        float64 `yaml:"inset_y"`        // Vertical spawn inset from field edges

	SpeedBoost     float64 `yaml:"speed_boost"`      // Paddle speed cap multiplier
	SlowBallFactor float64 `yaml:"slow_ball_factor"` // Velocity multiplier while slow_ball is active
	PaddleGrowth   float64 `yaml:"paddle_growth"`    // Paddle height multiplier for big_paddle
	ExtraBalls     int     `yaml:"extra_balls"`      // Balls added by multi_ball
	ExtraBallSpeed float64 `yaml:"extra_ball_speed"` // Fraction of the primary ball's speed
	ExtraBallAngle float64 `yaml:"extra_ball_angle"` // Launch angle spread, radians
}

// GameplayConfig defines match rules and feel.
type GameplayConfig struct {
	WinScore       int     `yaml:"win_score"`
	ServeDelay     float64 `yaml:"serve_delay"`      // Seconds between point and auto-launch
	ServeAngle     float64 `yaml:"serve_angle"`      // Serve angle spread, radians
	ScoreMargin    float64 `yaml:"score_margin"`     // Units past the field edge that end a rally
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Max paddle reflection angle, degrees
	ShakeImpulse   float64 `yaml:"shake_impulse"`    // Screen shake added per paddle hit
	ShakeDecay     float64 `yaml:"shake_decay"`      // Shake units removed per second
}

// CPUProfile holds the controller constants for one difficulty level.
// Reaction is the proportional controller's time constant in seconds;
// Error is the tracking noise as a fraction of field height.
type CPUProfile struct {
	Reaction float64 `yaml:"reaction"`
	Error    float64 `yaml:"error"`
}

// CPUConfig holds the three difficulty presets.
type CPUConfig struct {
	Easy   CPUProfile `yaml:"easy"`
	Medium CPUProfile `yaml:"medium"`
	Hard   CPUProfile `yaml:"hard"`
}

// Profile returns the preset for a difficulty level (0 easy, 1 medium,
// 2 hard). Out-of-range levels fall back to medium.
func (c CPUConfig) Profile(level int) CPUProfile {
	switch level {
	case 0:
		return c.Easy
	case 2:
		return c.Hard
	default:
		return c.Medium
	}
}
