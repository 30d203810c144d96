package pong

import (
	"math"
	"math/rand"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// Mode selects between a CPU opponent and two human players.
type Mode int

const (
	ModeOnePlayer Mode = iota // Left human vs CPU
	ModeTwoPlayer             // Two humans
)

// String returns the display name for the mode.
func (m Mode) String() string {
	if m == ModeTwoPlayer {
		return "2P"
	}
	return "1P"
}

// Menu entries, top to bottom.
const (
	menuItemMode = iota
	menuItemDifficulty
	menuItemStart
	menuItemQuit
	menuItemCount
)

// heldIntents tracks which movement keys are currently held, reconstructed
// from press/release edges.
type heldIntents struct {
	leftUp, leftDown   bool
	rightUp, rightDown bool
}

// Status is the per-tick summary returned to the platform layer.
type Status struct {
	ScoreL, ScoreR int
	MenuActive     bool
	Paused         bool
	Winner         int // 0 = none, 1 = left, 2 = right
	Quitting       bool
}

// Session owns every entity and timer of one game: paddles, balls,
// particles, power-ups, scores, and the menu/playing/paused state machine.
// It is advanced by Step at a fixed tick rate and queried with Render;
// nothing in it outlives the session.
type Session struct {
	cfg config.PongConfig
	rng *rand.Rand
	res resolver

	left, right *Paddle
	ball        *Ball
	extraBalls  []*Ball
	particles   []*Particle
	powerups    *PowerUpManager
	cpu         *CPU

	scoreL, scoreR int
	mode           Mode
	difficulty     Difficulty
	winner         int

	menuActive    bool
	menuSelection int

	paused     bool
	serveDir   Side
	serveReady bool
	serveTimer float64
	slowFactor float64

	shake       float64
	shakeOffset core.Vec2
	held        heldIntents
	quitting    bool
	tickCount   uint64
}

// NewSession creates a session showing the menu, with entities ready for
// the first match. The seed drives all randomness: serve angles, CPU error,
// power-up spawns, and particle bursts.
func NewSession(cfg config.PongConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		res:        newResolver(cfg.Field, cfg.Gameplay, cfg.Ball),
		mode:       ModeOnePlayer,
		difficulty: DifficultyMedium,
		menuActive: true,
		slowFactor: 1.0,
	}

	fieldW, fieldH := cfg.Field.Width, cfg.Field.Height
	s.left = NewPaddle(cfg.Paddle.Offset, fieldH/2, cfg.Paddle, fieldH)
	s.right = NewPaddle(fieldW-cfg.Paddle.Offset, fieldH/2, cfg.Paddle, fieldH)
	s.ball = s.newBall()
	s.powerups = NewPowerUpManager(cfg.PowerUps, fieldW, fieldH, s.rng)
	s.cpu = NewCPU(s.right, cfg.CPU.Profile(int(s.difficulty)), fieldW, fieldH, s.rng)
	s.serveDir = s.randomServeDir()
	s.serveReady = true
	return s
}

// SetMode selects the player mode before or between matches.
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// SetDifficulty selects the CPU preset and rebuilds the controller.
func (s *Session) SetDifficulty(d Difficulty) {
	s.difficulty = d
	s.cpu = NewCPU(s.right, s.cfg.CPU.Profile(int(d)), s.cfg.Field.Width, s.cfg.Field.Height, s.rng)
}

// Mode returns the current player mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Difficulty returns the current CPU difficulty.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Step advances the simulation by one fixed tick, consuming the input
// edges collected since the previous tick.
func (s *Session) Step(dt float64, in core.InputFrame) Status {
	s.handleCommands(in)
	if s.quitting || s.menuActive {
		return s.status()
	}

	s.trackMovement(in)
	if s.paused {
		return s.status()
	}
	s.tickCount++

	// (1) power-up spawn clock
	s.powerups.AdvanceSpawn(dt)

	// (2) CPU controller, (3) paddle integration
	s.applyIntents()
	if s.mode == ModeOnePlayer {
		s.cpu.Update(s.ball)
	}
	s.left.Update(dt)
	s.right.Update(dt)

	// (4) serve countdown and auto-launch
	if s.serveReady {
		s.serveTimer += dt
		if s.serveTimer > s.cfg.Gameplay.ServeDelay {
			angle := (s.rng.Float64()*2 - 1) * s.cfg.Gameplay.ServeAngle
			s.ball.Launch(s.serveDir, angle)
			s.serveReady = false
			s.serveTimer = 0
		}
	}

	// (5) ball integration
	for _, b := range s.allBalls() {
		b.Update(dt)
	}

	// (6) collision resolution, at most one paddle hit per ball
	for _, b := range s.allBalls() {
		if s.res.resolvePaddleHit(b, s.left, s.right) {
			s.particles = append(s.particles, newBurst(s.rng, b.Pos, core.ColorAccent, hitBurstCount)...)
			s.shake = s.cfg.Gameplay.ShakeImpulse
		}
	}

	// (7) scoring; the first ball out ends the rally for every ball
	for _, b := range s.allBalls() {
		if scorer, ok := s.res.checkScore(b); ok {
			s.scorePoint(scorer)
			break
		}
	}
	if s.checkWin() {
		return s.status()
	}

	// (8) power-up aging, pickups, and effect expiry
	picked, expired := s.powerups.Tick(dt, s.left.Bounds(), s.right.Bounds())
	for _, e := range expired {
		s.revertEffect(e)
	}
	for _, p := range picked {
		s.applyEffect(p.Kind, p.Side)
	}

	// (9) particle aging and pruning
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Update(dt)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	s.particles = alive

	// (10) shake decay
	s.shake = math.Max(0, s.shake-s.cfg.Gameplay.ShakeDecay*dt)
	s.shakeOffset = core.Vec2{
		X: (s.rng.Float64()*2 - 1) * s.shake,
		Y: (s.rng.Float64()*2 - 1) * s.shake,
	}

	return s.status()
}

// handleCommands processes one-shot command edges: quit everywhere, menu
// navigation while the menu is up, pause/restart during play.
func (s *Session) handleCommands(in core.InputFrame) {
	if in.WasPressed(core.ActionQuit) {
		s.quitting = true
		return
	}

	if s.menuActive {
		switch {
		case in.WasPressed(core.ActionMenuUp):
			s.menuSelection = core.ClampInt(s.menuSelection-1, 0, menuItemCount-1)
		case in.WasPressed(core.ActionMenuDown):
			s.menuSelection = core.ClampInt(s.menuSelection+1, 0, menuItemCount-1)
		case in.WasPressed(core.ActionConfirm):
			s.confirmMenu()
		}
		return
	}

	if in.WasPressed(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.WasPressed(core.ActionRestart) {
		s.resetMatch()
		s.menuActive = true
		s.menuSelection = 0
	}
}

// confirmMenu activates the selected menu entry.
func (s *Session) confirmMenu() {
	switch s.menuSelection {
	case menuItemMode:
		if s.mode == ModeOnePlayer {
			s.SetMode(ModeTwoPlayer)
		} else {
			s.SetMode(ModeOnePlayer)
		}
	case menuItemDifficulty:
		s.SetDifficulty((s.difficulty + 1) % difficultyCount)
	case menuItemStart:
		s.resetMatch()
		s.menuActive = false
	case menuItemQuit:
		s.quitting = true
	}
}

// resetMatch discards all entities and timers and zeroes the scores.
func (s *Session) resetMatch() {
	s.left.Y = s.cfg.Field.Height / 2
	s.right.Y = s.cfg.Field.Height / 2
	s.left.ResetHeight()
	s.left.ResetSpeedCap()
	s.right.ResetHeight()
	s.right.ResetSpeedCap()

	s.slowFactor = 1.0
	s.ball = s.newBall()
	s.extraBalls = nil
	s.particles = s.particles[:0]
	s.powerups.Reset()

	s.scoreL, s.scoreR = 0, 0
	s.winner = 0
	s.paused = false
	s.serveDir = s.randomServeDir()
	s.serveReady = true
	s.serveTimer = 0
	s.shake = 0
	s.shakeOffset = core.Vec2{}
	s.held = heldIntents{}
}

// trackMovement folds press/release edges into held-key state.
func (s *Session) trackMovement(in core.InputFrame) {
	track := func(a core.Action, held *bool) {
		if in.WasPressed(a) {
			*held = true
		}
		if in.WasReleased(a) {
			*held = false
		}
	}
	track(core.ActionLeftUp, &s.held.leftUp)
	track(core.ActionLeftDown, &s.held.leftDown)
	track(core.ActionRightUp, &s.held.rightUp)
	track(core.ActionRightDown, &s.held.rightDown)
}

// applyIntents converts held-key state into paddle velocity commands at the
// current speed caps. The right paddle only listens in two-player mode; the
// CPU owns it otherwise.
func (s *Session) applyIntents() {
	var lv float64
	if s.held.leftUp {
		lv -= 1
	}
	if s.held.leftDown {
		lv += 1
	}
	s.left.SetVelocity(lv * s.left.Speed)

	if s.mode == ModeTwoPlayer {
		var rv float64
		if s.held.rightUp {
			rv -= 1
		}
		if s.held.rightDown {
			rv += 1
		}
		s.right.SetVelocity(rv * s.right.Speed)
	}
}

// allBalls returns the primary ball followed by any extras.
func (s *Session) allBalls() []*Ball {
	balls := make([]*Ball, 0, 1+len(s.extraBalls))
	balls = append(balls, s.ball)
	balls = append(balls, s.extraBalls...)
	return balls
}

// newBall creates a centered ball at base speed with the session's current
// slow factor.
func (s *Session) newBall() *Ball {
	b := NewBall(s.cfg.Field.Width/2, s.cfg.Field.Height/2, s.cfg.Ball, s.cfg.Field.Height)
	b.SlowFactor = s.slowFactor
	return b
}

func (s *Session) randomServeDir() Side {
	if s.rng.Intn(2) == 0 {
		return SideLeft
	}
	return SideRight
}

// scorePoint ends the rally: the scorer's count goes up, a burst fires at
// the conceded edge, all balls are discarded for a fresh centered one, and
// the serve is aimed at the side that just conceded.
func (s *Session) scorePoint(scorer Side) {
	fieldW, fieldH := s.cfg.Field.Width, s.cfg.Field.Height
	if scorer == SideRight {
		s.scoreR++
		s.particles = append(s.particles, newBurst(s.rng, core.Vec2{X: 20, Y: fieldH / 2}, core.ColorAccent, scoreBurstCount)...)
		s.serveDir = SideLeft
	} else {
		s.scoreL++
		s.particles = append(s.particles, newBurst(s.rng, core.Vec2{X: fieldW - 20, Y: fieldH / 2}, core.ColorAccent, scoreBurstCount)...)
		s.serveDir = SideRight
	}

	s.ball = s.newBall()
	s.extraBalls = nil
	s.serveReady = true
	s.serveTimer = 0
}

// checkWin transitions to the menu when either side reaches the win score,
// preserving the final scores for display.
func (s *Session) checkWin() bool {
	win := s.cfg.Gameplay.WinScore
	if s.scoreL < win && s.scoreR < win {
		return false
	}
	if s.scoreL > s.scoreR {
		s.winner = 1
	} else {
		s.winner = 2
	}
	s.menuActive = true
	s.menuSelection = 0
	return true
}

// paddleFor returns the paddle on the given side.
func (s *Session) paddleFor(side Side) *Paddle {
	if side == SideLeft {
		return s.left
	}
	return s.right
}

// applyEffect activates a picked-up power-up for the claiming side. Any
// running instance of the same kind is reverted first, so re-pickup
// restarts the duration instead of stacking.
func (s *Session) applyEffect(kind PowerUpKind, side Side) {
	if prev := s.powerups.Activate(kind, side); prev != nil {
		s.undoEffect(*prev)
	}

	p := s.paddleFor(side)
	switch kind {
	case PowerSpeedBoost:
		p.SetSpeedCap(p.BaseSpeed() * s.cfg.PowerUps.SpeedBoost)
	case PowerSlowBall:
		s.setSlowFactor(s.cfg.PowerUps.SlowBallFactor)
	case PowerBigPaddle:
		p.SetHeight(p.BaseHeight() * s.cfg.PowerUps.PaddleGrowth)
	case PowerMultiBall:
		s.spawnExtraBalls()
	}
}

// revertEffect undoes an expired effect exactly once.
func (s *Session) revertEffect(e ActiveEffect) {
	s.undoEffect(e)
}

// undoEffect restores the entity state an effect instance mutated.
func (s *Session) undoEffect(e ActiveEffect) {
	switch e.Kind {
	case PowerSpeedBoost:
		s.paddleFor(e.Owner).ResetSpeedCap()
	case PowerSlowBall:
		s.setSlowFactor(1.0)
	case PowerBigPaddle:
		s.paddleFor(e.Owner).ResetHeight()
	case PowerMultiBall:
		s.extraBalls = nil
	}
}

// setSlowFactor applies the global ball slow factor to every active ball;
// balls created while it is active inherit it.
func (s *Session) setSlowFactor(f float64) {
	s.slowFactor = f
	for _, b := range s.allBalls() {
		b.SlowFactor = f
	}
}

// spawnExtraBalls launches the multi-ball extras from the primary ball's
// position with small random angles at a fraction of its speed.
func (s *Session) spawnExtraBalls() {
	for i := 0; i < s.cfg.PowerUps.ExtraBalls; i++ {
		b := NewBall(s.ball.Pos.X, s.ball.Pos.Y, s.cfg.Ball, s.cfg.Field.Height)
		b.Speed = s.ball.Speed * s.cfg.PowerUps.ExtraBallSpeed
		b.SlowFactor = s.slowFactor
		dir := s.randomServeDir()
		angle := (s.rng.Float64()*2 - 1) * s.cfg.PowerUps.ExtraBallAngle
		b.Launch(dir, angle)
		s.extraBalls = append(s.extraBalls, b)
	}
}

func (s *Session) status() Status {
	return Status{
		ScoreL:     s.scoreL,
		ScoreR:     s.scoreR,
		MenuActive: s.menuActive,
		Paused:     s.paused,
		Winner:     s.winner,
		Quitting:   s.quitting,
	}
}

// Render hands the immutable end-of-tick state to the boundary: draw
// requests for every visible entity plus the HUD numbers. While the menu is
// up only the HUD is populated; text layout stays with the renderer.
func (s *Session) Render(f *core.Frame) {
	f.Reset()
	f.FieldW = s.cfg.Field.Width
	f.FieldH = s.cfg.Field.Height
	f.Shake = s.shakeOffset
	f.HUD = core.HUD{
		ScoreL:        s.scoreL,
		ScoreR:        s.scoreR,
		Paused:        s.paused,
		Serving:       s.serveReady,
		MenuActive:    s.menuActive,
		MenuSelection: s.menuSelection,
		Players:       int(s.mode) + 1,
		Difficulty:    int(s.difficulty),
		Winner:        s.winner,
	}
	if s.menuActive {
		return
	}

	f.Push(core.FilledRect(s.left.Bounds(), core.ColorWhite, 6))
	f.Push(core.FilledRect(s.right.Bounds(), core.ColorWhite, 6))

	for _, pu := range s.powerups.PowerUps {
		f.Push(core.FilledRect(pu.Bounds(), pu.Kind.Color(), 6))
		f.Push(core.FilledCircle(pu.Pos, 6, core.ColorGray))
	}

	for _, b := range s.allBalls() {
		f.Push(core.FilledCircle(b.Pos, b.Radius, core.ColorAccent))
	}

	for _, p := range s.particles {
		f.Push(core.TranslucentSquare(p.Pos, particleSize, p.Color, p.Alpha()))
	}
}
