package runner

import (
	"testing"

	"github.com/vovakirdan/foxrun/internal/config"
)

func newTestSpawner(cfg *config.RunnerConfig, render RenderSink) *Spawner {
	return NewSpawner(7, cfg, config.NewDifficultyManager(cfg.Difficulty), render)
}

func TestSpawnerFirstSpawnAtInterval(t *testing.T) {
	cfg := obstaclesOnly()
	s := newTestSpawner(&cfg, nil)

	// Interval at score 0 is the base interval of 60 ticks
	for i := 0; i < 59; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, nil)
	}
	if s.Live() != 0 {
		t.Fatalf("expected no spawn before the interval, got %d entities", s.Live())
	}

	s.Tick(1, 0, cfg.Track.PlayerZ, nil)
	if len(s.Obstacles()) != 1 {
		t.Fatalf("expected one obstacle at the interval, got %d", len(s.Obstacles()))
	}

	o := s.Obstacles()[0]
	want := cfg.Track.SpawnZ + 0.22 // spawned then moved in the same tick
	if diff := o.Z - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("spawned obstacle at z=%f, want %f", o.Z, want)
	}
	if o.Lane < 0 || o.Lane >= LaneCount {
		t.Errorf("lane %d out of range", o.Lane)
	}
	if o.X != LaneX(o.Lane, cfg.Track.LaneSpacing) {
		t.Errorf("x %f does not match lane %d", o.X, o.Lane)
	}
}

func TestSpawnerAtMostOneSpawnPerTick(t *testing.T) {
	cfg := obstaclesOnly()
	s := newTestSpawner(&cfg, nil)

	// A huge delta still produces a single spawn decision
	s.Tick(500, 0, cfg.Track.PlayerZ, nil)
	if s.Spawned() != 1 {
		t.Errorf("expected 1 spawn, got %d", s.Spawned())
	}
}

func TestSpawnerIgnoresNonPositiveDelta(t *testing.T) {
	cfg := obstaclesOnly()
	s := newTestSpawner(&cfg, nil)
	s.obstacles = append(s.obstacles, Entity{ID: 100, Kind: KindObstacle, Z: -10})

	s.Tick(0, 0, cfg.Track.PlayerZ, nil)
	s.Tick(-3, 0, cfg.Track.PlayerZ, nil)

	if s.Obstacles()[0].Z != -10 {
		t.Errorf("entity moved on non-positive delta: z=%f", s.Obstacles()[0].Z)
	}
}

func TestObstaclePassedFiresOnce(t *testing.T) {
	cfg := obstaclesOnly()
	s := newTestSpawner(&cfg, nil)
	passZ := cfg.Track.PlayerZ + cfg.Track.PassMargin
	s.obstacles = append(s.obstacles, Entity{ID: 100, Kind: KindObstacle, Z: passZ - 0.1})

	var calls []int
	onPassed := func(points int) { calls = append(calls, points) }

	s.Tick(1, 0, cfg.Track.PlayerZ, onPassed)
	if len(calls) != 1 || calls[0] != cfg.Scoring.BasePoints {
		t.Fatalf("expected one callback with %d points, got %v", cfg.Scoring.BasePoints, calls)
	}
	if !s.Obstacles()[0].Scored {
		t.Error("obstacle should be marked scored")
	}

	for i := 0; i < 10; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, onPassed)
	}
	if len(calls) != 1 {
		t.Errorf("callback fired %d times, want 1", len(calls))
	}
}

func TestObstaclePassedOncePerObstacleOverLongRun(t *testing.T) {
	cfg := obstaclesOnly()
	s := newTestSpawner(&cfg, nil)

	passed := 0
	for i := 0; i < 5000; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, func(int) { passed++ })
	}

	unscored := 0
	for _, o := range s.Obstacles() {
		if !o.Scored {
			unscored++
		}
	}
	if want := s.Spawned() - unscored; passed != want {
		t.Errorf("passed callbacks = %d, want %d (spawned %d, unscored live %d)",
			passed, want, s.Spawned(), unscored)
	}
	if passed == 0 {
		t.Error("expected some obstacles to pass in 5000 ticks")
	}
}

func TestSpawnerCullsBeyondRearBoundary(t *testing.T) {
	cfg := obstaclesOnly()
	render := newRecordingRender()
	s := newTestSpawner(&cfg, render)

	for i := 0; i < 5000; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, nil)
		for _, o := range s.Obstacles() {
			if o.Z > cfg.Track.CleanupZ {
				t.Fatalf("tick %d: obstacle %d alive at z=%f", i, o.ID, o.Z)
			}
		}
	}

	if len(render.live) != s.Live() {
		t.Errorf("render has %d visuals, spawner has %d entities", len(render.live), s.Live())
	}
	if render.removed != s.Spawned()-s.Live() {
		t.Errorf("removed %d visuals, want %d", render.removed, s.Spawned()-s.Live())
	}
}

func TestSpawnerMirrorsPositions(t *testing.T) {
	cfg := obstaclesOnly()
	render := newRecordingRender()
	s := newTestSpawner(&cfg, render)

	for i := 0; i < 200; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, nil)
	}
	for _, o := range s.Obstacles() {
		v, ok := render.live[s.handles[o.ID]]
		if !ok {
			t.Fatalf("no visual for obstacle %d", o.ID)
		}
		if v.z != o.Z || v.lane != o.Lane || v.kind != KindObstacle {
			t.Errorf("visual %+v does not match obstacle %+v", v, o)
		}
	}
}

func TestSpawnerKindDistribution(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ShieldChance = 0.5
	cfg.Spawn.MultiplierChance = 0.5
	render := newRecordingRender()
	s := newTestSpawner(&cfg, render)

	for i := 0; i < 1000; i++ {
		s.Tick(60, 0, cfg.Track.PlayerZ, nil)
	}
	if render.kinds[KindObstacle] != 0 {
		t.Errorf("chances summing to 1 must never spawn obstacles, got %d", render.kinds[KindObstacle])
	}
	if render.kinds[KindShield] == 0 || render.kinds[KindMultiplier] == 0 {
		t.Errorf("expected both kinds, got %v", render.kinds)
	}
	if total := render.kinds[KindShield] + render.kinds[KindMultiplier]; total != 1000 {
		t.Errorf("expected 1000 spawns, got %d", total)
	}
}

func TestSpawnerRemoveIsIdempotent(t *testing.T) {
	cfg := obstaclesOnly()
	render := newRecordingRender()
	s := newTestSpawner(&cfg, render)
	s.Tick(60, 0, cfg.Track.PlayerZ, nil)

	id := s.Obstacles()[0].ID
	if !s.Remove(id) {
		t.Fatal("first Remove should succeed")
	}
	if s.Remove(id) {
		t.Error("second Remove should be a no-op")
	}
	if s.Live() != 0 || len(render.live) != 0 {
		t.Errorf("expected empty track, got %d entities and %d visuals", s.Live(), len(render.live))
	}
	if render.removed != 1 {
		t.Errorf("visual removed %d times, want 1", render.removed)
	}
}

func TestSpawnerReset(t *testing.T) {
	cfg := obstaclesOnly()
	render := newRecordingRender()
	s := newTestSpawner(&cfg, render)
	for i := 0; i < 300; i++ {
		s.Tick(1, 0, cfg.Track.PlayerZ, nil)
	}
	if s.Live() == 0 {
		t.Fatal("expected entities before reset")
	}

	s.Reset(7)
	if s.Live() != 0 || s.spawnTimer != 0 || len(render.live) != 0 {
		t.Errorf("reset left live=%d timer=%f visuals=%d", s.Live(), s.spawnTimer, len(render.live))
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := newTestSpawner(&cfg, nil)
	b := newTestSpawner(&cfg, nil)

	for i := 0; i < 2000; i++ {
		a.Tick(1, i, cfg.Track.PlayerZ, nil)
		b.Tick(1, i, cfg.Track.PlayerZ, nil)
	}

	if a.Spawned() != b.Spawned() || a.Live() != b.Live() {
		t.Fatalf("spawn mismatch: %d/%d vs %d/%d", a.Spawned(), a.Live(), b.Spawned(), b.Live())
	}
	for i, o := range a.Obstacles() {
		if o != b.Obstacles()[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, o, b.Obstacles()[i])
		}
	}
}
