package runner

import (
	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
)

// PowerupSink applies the effects of collisions to the player.
type PowerupSink interface {
	// OnShieldHit is called when an obstacle reaches the player. It returns
	// true if an active shield absorbed the hit, consuming the shield.
	OnShieldHit() bool
	// OnPowerupCollected activates the effect of a collected power-up.
	OnPowerupCollected(kind Kind)
}

// Outcome is the result of one collision pass.
type Outcome struct {
	Fatal   bool       // An unshielded obstacle hit the player
	Removed []EntityID // Entities consumed by the pass, to be removed afterwards
}

// Resolver detects player contact with obstacles and power-ups using planar
// squared distance on the lane and longitudinal axes.
type Resolver struct {
	radiusSq        float64
	powerUpRadiusSq float64
	sink            PowerupSink
}

// NewResolver creates a resolver reporting to sink.
func NewResolver(cfg config.CollisionConfig, sink PowerupSink) *Resolver {
	return &Resolver{
		radiusSq:        cfg.RadiusSq(),
		powerUpRadiusSq: cfg.PowerUpRadiusSq(),
		sink:            sink,
	}
}

// Resolve scans obstacles first, then power-ups. Entities are never removed
// during the scan; consumed ids are returned in Outcome.Removed so the caller
// can remove them once, after the scan. A fatal hit stops the pass and
// power-ups are not considered.
func (r *Resolver) Resolve(player core.Point, obstacles, powerups []Entity) Outcome {
	var out Outcome

	for _, o := range obstacles {
		if !player.Within(o.Pos(), r.radiusSq) {
			continue
		}
		if r.sink.OnShieldHit() {
			out.Removed = append(out.Removed, o.ID)
			continue
		}
		out.Fatal = true
		return out
	}

	for _, p := range powerups {
		if !player.Within(p.Pos(), r.powerUpRadiusSq) {
			continue
		}
		r.sink.OnPowerupCollected(p.Kind)
		out.Removed = append(out.Removed, p.ID)
	}
	return out
}
