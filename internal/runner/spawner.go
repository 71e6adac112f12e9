package runner

import (
	"math/rand"

	"github.com/vovakirdan/foxrun/internal/config"
)

// Spawner handles spawning, movement, and removal of track entities.
type Spawner struct {
	obstacles  []Entity
	powerups   []Entity
	handles    map[EntityID]VisualHandle
	rng        *rand.Rand
	spawnTimer float64 // Ticks accumulated since the last spawn decision
	interval   float64 // Interval in effect for the current tick
	nextID     EntityID
	spawned    int

	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	render     RenderSink
}

// NewSpawner creates a spawner with the given RNG seed. A nil render sink
// discards visual updates.
func NewSpawner(seed int64, cfg *config.RunnerConfig, diff *config.DifficultyManager, render RenderSink) *Spawner {
	if render == nil {
		render = NopRender{}
	}
	s := &Spawner{
		obstacles:  make([]Entity, 0, 16),
		powerups:   make([]Entity, 0, 4),
		handles:    make(map[EntityID]VisualHandle),
		cfg:        cfg,
		difficulty: diff,
		render:     render,
	}
	s.Reset(seed)
	return s
}

// Reset removes every live entity, clears the spawn timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	for _, e := range s.obstacles {
		s.dropVisual(e.ID)
	}
	for _, e := range s.powerups {
		s.dropVisual(e.ID)
	}
	s.obstacles = s.obstacles[:0]
	s.powerups = s.powerups[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.spawnTimer = 0
	s.interval = s.difficulty.SpawnInterval(0)
	s.spawned = 0
}

// Tick advances the spawner by deltaTicks nominal frames.
//
// onObstaclePassed is called once per obstacle, with the configured base
// points, when it moves beyond playerZ plus the pass margin. It must not call
// back into the spawner.
func (s *Spawner) Tick(deltaTicks float64, score int, playerZ float64, onObstaclePassed func(points int)) {
	if deltaTicks <= 0 {
		return
	}

	s.interval = s.difficulty.SpawnInterval(score)
	s.spawnTimer += deltaTicks
	if s.spawnTimer >= s.interval {
		// Excess is discarded, so at most one spawn happens per tick
		s.spawnTimer = 0
		s.spawn()
	}

	move := s.difficulty.Speed(score) * deltaTicks
	passZ := playerZ + s.cfg.Track.PassMargin

	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.Z += move
		if !o.Scored && o.Z > passZ {
			o.Scored = true
			if onObstaclePassed != nil {
				onObstaclePassed(s.cfg.Scoring.BasePoints)
			}
		}
	}
	for i := range s.powerups {
		s.powerups[i].Z += move
	}

	s.obstacles = s.cull(s.obstacles)
	s.powerups = s.cull(s.powerups)
}

// cull drops entities beyond the rear boundary and mirrors every survivor's
// position to the render sink.
func (s *Spawner) cull(list []Entity) []Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Z > s.cfg.Track.CleanupZ {
			s.dropVisual(e.ID)
			continue
		}
		s.render.MoveVisual(s.handles[e.ID], e.Z)
		kept = append(kept, e)
	}
	return kept
}

// spawn makes one spawn decision at the spawn distance.
func (s *Spawner) spawn() {
	lane := s.rng.Intn(LaneCount)
	roll := s.rng.Float64()

	kind := KindObstacle
	switch {
	case roll < s.cfg.Spawn.ShieldChance:
		kind = KindShield
	case roll < s.cfg.Spawn.ShieldChance+s.cfg.Spawn.MultiplierChance:
		kind = KindMultiplier
	}

	s.nextID++
	e := Entity{
		ID:   s.nextID,
		Kind: kind,
		Lane: lane,
		X:    LaneX(lane, s.cfg.Track.LaneSpacing),
		Z:    s.cfg.Track.SpawnZ,
	}
	s.handles[e.ID] = s.render.SpawnVisual(kind, lane, e.Z)
	s.spawned++

	if kind == KindObstacle {
		s.obstacles = append(s.obstacles, e)
	} else {
		s.powerups = append(s.powerups, e)
	}
}

// Remove destroys the entity with the given id. Removing an unknown or
// already removed id is a no-op that returns false.
func (s *Spawner) Remove(id EntityID) bool {
	for i, e := range s.obstacles {
		if e.ID == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			s.dropVisual(id)
			return true
		}
	}
	for i, e := range s.powerups {
		if e.ID == id {
			s.powerups = append(s.powerups[:i], s.powerups[i+1:]...)
			s.dropVisual(id)
			return true
		}
	}
	return false
}

func (s *Spawner) dropVisual(id EntityID) {
	if h, ok := s.handles[id]; ok {
		s.render.RemoveVisual(h)
		delete(s.handles, id)
	}
}

// Obstacles returns the live obstacles. The slice is owned by the spawner
// and is only valid until the next Tick, Remove or Reset.
func (s *Spawner) Obstacles() []Entity {
	return s.obstacles
}

// PowerUps returns the live power-ups, with the same ownership rules as
// Obstacles.
func (s *Spawner) PowerUps() []Entity {
	return s.powerups
}

// Live returns the number of live entities.
func (s *Spawner) Live() int {
	return len(s.obstacles) + len(s.powerups)
}

// Spawned returns the number of entities spawned since the last reset.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Interval returns the spawn interval used by the most recent tick.
func (s *Spawner) Interval() float64 {
	return s.interval
}
