package pong

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the observable simulation state with primitive types
// only. Velocities and positions are scaled to integers for stable
// comparison in determinism tests and diagnostics.
type Snapshot struct {
	Tick       uint64
	BallX      int
	BallY      int
	BallVX     int // Scaled by 1000
	BallVY     int // Scaled by 1000
	BallSpeed  int // Scaled by 1000
	ExtraBalls int
	PaddleLY   int
	PaddleRY   int
	ScoreL     int
	ScoreR     int
	Serving    bool
	Paused     bool
	MenuActive bool
	Winner     int
	PowerUps   int
	Effects    int
	Particles  int
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tickCount,
		BallX:      int(s.ball.Pos.X),
		BallY:      int(s.ball.Pos.Y),
		BallVX:     int(s.ball.Vel.X * 1000),
		BallVY:     int(s.ball.Vel.Y * 1000),
		BallSpeed:  int(s.ball.Speed * 1000),
		ExtraBalls: len(s.extraBalls),
		PaddleLY:   int(s.left.Y),
		PaddleRY:   int(s.right.Y),
		ScoreL:     s.scoreL,
		ScoreR:     s.scoreR,
		Serving:    s.serveReady,
		Paused:     s.paused,
		MenuActive: s.menuActive,
		Winner:     s.winner,
		PowerUps:   len(s.powerups.PowerUps),
		Effects:    len(s.powerups.Effects),
		Particles:  len(s.particles),
	}
}

// Hash returns a digest of the snapshot for quick equality checks.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	write := func(v int64) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}

	write(int64(snap.Tick))
	write(int64(snap.BallX))
	write(int64(snap.BallY))
	write(int64(snap.BallVX))
	write(int64(snap.BallVY))
	write(int64(snap.BallSpeed))
	write(int64(snap.ExtraBalls))
	write(int64(snap.PaddleLY))
	write(int64(snap.PaddleRY))
	write(int64(snap.ScoreL))
	write(int64(snap.ScoreR))
	write(int64(snap.Winner))
	write(int64(snap.PowerUps))
	write(int64(snap.Effects))
	write(int64(snap.Particles))

	flags := int64(0)
	if snap.Serving {
		flags |= 1
	}
	if snap.Paused {
		flags |= 2
	}
	if snap.MenuActive {
		flags |= 4
	}
	write(flags)

	return h.Sum64()
}
