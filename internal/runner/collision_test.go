package runner

import (
	"testing"

	"github.com/vovakirdan/foxrun/internal/config"
	"github.com/vovakirdan/foxrun/internal/core"
)

type fakePowerups struct {
	shield    bool
	hits      int
	collected []Kind
}

func (f *fakePowerups) OnShieldHit() bool {
	f.hits++
	if !f.shield {
		return false
	}
	f.shield = false
	return true
}

func (f *fakePowerups) OnPowerupCollected(kind Kind) {
	f.collected = append(f.collected, kind)
	if kind == KindShield {
		f.shield = true
	}
}

var player = core.Point{X: 0, Z: 5}

func obstacleAt(id EntityID, x, z float64) Entity {
	return Entity{ID: id, Kind: KindObstacle, X: x, Z: z}
}

func TestResolveMiss(t *testing.T) {
	sink := &fakePowerups{}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	out := r.Resolve(player, []Entity{obstacleAt(1, 3.5, 5), obstacleAt(2, 0, 7)}, nil)
	if out.Fatal || len(out.Removed) != 0 || sink.hits != 0 {
		t.Errorf("expected no contact, got %+v (hits %d)", out, sink.hits)
	}
}

func TestResolveBoundaryIsContact(t *testing.T) {
	sink := &fakePowerups{}
	r := NewResolver(config.CollisionConfig{Radius: 1, PowerUpScale: 0.9}, sink)

	out := r.Resolve(player, []Entity{obstacleAt(1, 0, 6)}, nil)
	if !out.Fatal {
		t.Error("distance equal to the radius should collide")
	}
}

func TestResolveFatalWithoutShield(t *testing.T) {
	sink := &fakePowerups{}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	out := r.Resolve(player, []Entity{obstacleAt(1, 0, 5.5)}, []Entity{{ID: 2, Kind: KindShield, Z: 5}})
	if !out.Fatal {
		t.Fatal("expected a fatal hit")
	}
	if len(sink.collected) != 0 {
		t.Error("power-ups must not be collected after a fatal hit")
	}
}

func TestResolveShieldAbsorbsOneHit(t *testing.T) {
	sink := &fakePowerups{shield: true}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	out := r.Resolve(player, []Entity{obstacleAt(1, 0, 5)}, nil)
	if out.Fatal {
		t.Fatal("shield should absorb the hit")
	}
	if sink.shield {
		t.Error("shield should be consumed")
	}
	if len(out.Removed) != 1 || out.Removed[0] != 1 {
		t.Errorf("removed = %v, want [1]", out.Removed)
	}
}

func TestResolveSecondObstacleIsFatal(t *testing.T) {
	sink := &fakePowerups{shield: true}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	out := r.Resolve(player, []Entity{obstacleAt(1, 0, 5), obstacleAt(2, 0, 5.4)}, nil)
	if !out.Fatal {
		t.Fatal("second obstacle should be fatal once the shield is gone")
	}
	if len(out.Removed) != 1 || out.Removed[0] != 1 {
		t.Errorf("removed = %v, want [1]", out.Removed)
	}
}

func TestResolveCollectsEveryPowerUpInRange(t *testing.T) {
	sink := &fakePowerups{}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	powerups := []Entity{
		{ID: 1, Kind: KindShield, Z: 5},
		{ID: 2, Kind: KindMultiplier, Z: 5.3},
		{ID: 3, Kind: KindMultiplier, X: 3.5, Z: 5},
	}
	out := r.Resolve(player, nil, powerups)

	if len(sink.collected) != 2 || sink.collected[0] != KindShield || sink.collected[1] != KindMultiplier {
		t.Errorf("collected = %v, want [shield multiplier]", sink.collected)
	}
	if len(out.Removed) != 2 || out.Removed[0] != 1 || out.Removed[1] != 2 {
		t.Errorf("removed = %v, want [1 2]", out.Removed)
	}
	if len(powerups) != 3 {
		t.Error("resolver must not modify the input")
	}
}

func TestResolvePowerUpRadiusIsSmaller(t *testing.T) {
	sink := &fakePowerups{}
	r := NewResolver(config.DefaultRunnerConfig().Collision, sink)

	// 1.0 is inside the obstacle radius (1.05) but outside 0.9*1.05
	out := r.Resolve(player, nil, []Entity{{ID: 1, Kind: KindShield, Z: 6}})
	if len(out.Removed) != 0 {
		t.Error("power-up outside the pickup radius was collected")
	}
}
