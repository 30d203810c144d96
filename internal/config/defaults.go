package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration, matching the
// embedded defaults/pong.yaml. Used as the last-resort fallback if the
// embedded YAML fails to parse.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  14,
			Height: 110,
			Speed:  420,
			Offset: 36,
			Margin: 8,
		},
		Ball: BallConfig{
			Radius:      10,
			BaseSpeed:   380,
			SpeedGrowth: 1.04,
		},
		PowerUps: PowerUpsConfig{
			Size:           20,
			Duration:       6.0,
			SpawnInterval:  8.0,
			TTL:            10.0,
			InsetX:         200,
			InsetY:         120,
			SpeedBoost:     1.6,
			SlowBallFactor: 0.55,
			PaddleGrowth:   1.6,
			ExtraBalls:     2,
			ExtraBallSpeed: 0.9,
			ExtraBallAngle: 0.9,
		},
		Gameplay: GameplayConfig{
			WinScore:       7,
			ServeDelay:     0.6,
			ServeAngle:     0.45,
			ScoreMargin:    50,
			MaxBounceAngle: 60,
			ShakeImpulse:   6,
			ShakeDecay:     30,
		},
		CPU: CPUConfig{
			Easy:   CPUProfile{Reaction: 0.22, Error: 0.14},
			Medium: CPUProfile{Reaction: 0.12, Error: 0.08},
			Hard:   CPUProfile{Reaction: 0.06, Error: 0.03},
		},
	}
}
