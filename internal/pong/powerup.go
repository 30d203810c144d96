package pong

import (
	"math/rand"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
)

// PowerUpKind represents the four pickup types.
type PowerUpKind int

const (
	PowerSpeedBoost PowerUpKind = iota // Owner paddle speed cap boost
	PowerSlowBall                      // Global ball slowdown
	PowerBigPaddle                     // Owner paddle height boost
	PowerMultiBall                     // Two extra balls
	powerKindCount                     // Sentinel for counting types
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeedBoost:
		return "speed_boost"
	case PowerSlowBall:
		return "slow_ball"
	case PowerBigPaddle:
		return "big_paddle"
	case PowerMultiBall:
		return "multi_ball"
	default:
		return "unknown"
	}
}

// Color returns the display color for the pickup.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerSpeedBoost:
		return core.ColorRed
	case PowerSlowBall:
		return core.ColorGreen
	case PowerBigPaddle:
		return core.ColorYellow
	default:
		return core.ColorAccent
	}
}

// PowerUp is a pickup sitting on the field, waiting to be claimed by a
// paddle before its TTL runs out.
type PowerUp struct {
	Kind PowerUpKind
	Pos  core.Vec2
	Size float64
	TTL  float64
}

// Update counts down the unclaimed lifetime.
func (p *PowerUp) Update(dt float64) {
	p.TTL -= dt
}

// Expired reports whether the pickup vanished unclaimed.
func (p *PowerUp) Expired() bool {
	return p.TTL <= 0
}

// Bounds returns the pickup's collision box.
func (p *PowerUp) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.Size, p.Size)
}

// ActiveEffect is a running timed effect: a kind, the paddle side that
// owns it, and the time left until it reverts. At most one instance per
// kind exists; re-triggering replaces the instance instead of stacking.
type ActiveEffect struct {
	Kind      PowerUpKind
	Owner     Side
	Remaining float64
}

// Pickup reports a claimed power-up: which kind and by which side.
type Pickup struct {
	Kind PowerUpKind
	Side Side
}

// PowerUpManager owns pickup spawning, TTL expiry, paddle overlap checks,
// and the deadline list for active effects. Effect application and reversal
// mutate entities, so the session performs those; the manager only does the
// bookkeeping.
type PowerUpManager struct {
	cfg    config.PowerUpsConfig
	rng    *rand.Rand
	fieldW float64
	fieldH float64

	spawnTimer float64
	PowerUps   []*PowerUp
	Effects    []ActiveEffect
}

// NewPowerUpManager creates a manager spawning within the given field.
func NewPowerUpManager(cfg config.PowerUpsConfig, fieldW, fieldH float64, rng *rand.Rand) *PowerUpManager {
	return &PowerUpManager{
		cfg:    cfg,
		rng:    rng,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Reset clears all pickups, effects, and the spawn timer.
func (pm *PowerUpManager) Reset() {
	pm.spawnTimer = 0
	pm.PowerUps = pm.PowerUps[:0]
	pm.Effects = pm.Effects[:0]
}

// AdvanceSpawn moves the spawn clock forward and creates a new pickup of
// uniformly random kind at a random inset position when the interval
// elapses. Returns the spawned pickup, or nil.
func (pm *PowerUpManager) AdvanceSpawn(dt float64) *PowerUp {
	pm.spawnTimer += dt
	if pm.spawnTimer < pm.cfg.SpawnInterval {
		return nil
	}
	pm.spawnTimer = 0

	pu := &PowerUp{
		Kind: PowerUpKind(pm.rng.Intn(int(powerKindCount))),
		Pos: core.Vec2{
			X: pm.cfg.InsetX + pm.rng.Float64()*(pm.fieldW-2*pm.cfg.InsetX),
			Y: pm.cfg.InsetY + pm.rng.Float64()*(pm.fieldH-2*pm.cfg.InsetY),
		},
		Size: pm.cfg.Size,
		TTL:  pm.cfg.TTL,
	}
	pm.PowerUps = append(pm.PowerUps, pu)
	return pu
}

// Tick ages pickups and effect deadlines. Pickups overlapping a paddle are
// claimed for that side (left paddle checked first); unclaimed pickups past
// their TTL vanish silently. Effects whose deadline elapsed are removed and
// returned exactly once so the caller can revert them.
func (pm *PowerUpManager) Tick(dt float64, left, right core.Rect) (picked []Pickup, expired []ActiveEffect) {
	keep := pm.PowerUps[:0]
	for _, pu := range pm.PowerUps {
		pu.Update(dt)
		if pu.Expired() {
			continue
		}
		switch {
		case pu.Bounds().Intersects(left):
			picked = append(picked, Pickup{Kind: pu.Kind, Side: SideLeft})
		case pu.Bounds().Intersects(right):
			picked = append(picked, Pickup{Kind: pu.Kind, Side: SideRight})
		default:
			keep = append(keep, pu)
		}
	}
	pm.PowerUps = keep

	active := pm.Effects[:0]
	for _, e := range pm.Effects {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			expired = append(expired, e)
			continue
		}
		active = append(active, e)
	}
	pm.Effects = active

	return picked, expired
}

// Activate records an effect instance for kind, replacing any existing one
// and restarting the duration. The replaced instance is returned so the
// caller can undo its entity mutations before applying the new one.
func (pm *PowerUpManager) Activate(kind PowerUpKind, owner Side) (previous *ActiveEffect) {
	for i := range pm.Effects {
		if pm.Effects[i].Kind == kind {
			prev := pm.Effects[i]
			pm.Effects[i] = ActiveEffect{Kind: kind, Owner: owner, Remaining: pm.cfg.Duration}
			return &prev
		}
	}
	pm.Effects = append(pm.Effects, ActiveEffect{Kind: kind, Owner: owner, Remaining: pm.cfg.Duration})
	return nil
}

// ActiveFor returns the running instance for kind, if any.
func (pm *PowerUpManager) ActiveFor(kind PowerUpKind) (ActiveEffect, bool) {
	for _, e := range pm.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return ActiveEffect{}, false
}
