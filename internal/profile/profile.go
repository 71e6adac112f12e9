// Package profile holds the account-level state that outlives a run: best
// score, orb balance, trail unlocks and the equipped trail.
//
// Everything is loaded once from a KV store and written back on every change.
// Corrupt or missing values fall back to safe defaults; write failures are
// logged and otherwise ignored so gameplay never depends on storage.
package profile

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Profile is the persistent player profile.
type Profile struct {
	kv       KV
	logger   *log.Logger
	playerID string

	highScore int
	orbs      int
	unlocked  map[string]bool
	equipped  string
}

// Load reads the profile from kv. It never fails.
func Load(kv KV, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.Default()
	}
	p := &Profile{
		kv:       kv,
		logger:   logger,
		unlocked: map[string]bool{DefaultTrailID: true},
		equipped: DefaultTrailID,
	}

	p.highScore = p.readInt(KeyHighScore)
	p.orbs = p.readInt(KeyOrbs)

	if raw, ok := p.get(KeyTrailUnlocks); ok && raw != "" {
		var stored map[string]bool
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			logger.Warn("corrupt trail unlocks, keeping default only", "error", err)
		} else {
			for id, owned := range stored {
				if _, known := LookupTrail(id); known && owned {
					p.unlocked[id] = true
				}
			}
		}
	}

	if id, ok := p.get(KeyEquippedTrail); ok && p.unlocked[id] {
		p.equipped = id
	}

	p.playerID = p.loadPlayerID()
	return p
}

// get reads key, logging read failures and reporting them as missing.
func (p *Profile) get(key string) (string, bool) {
	l, ok := p.kv.(Lookuper)
	if !ok {
		return p.kv.Get(key)
	}
	v, found, err := l.Lookup(key)
	if err != nil {
		p.logger.Error("cannot read stored value, using default", "key", key, "error", err)
		return "", false
	}
	return v, found
}

// readInt parses a non-negative integer, treating anything else as zero.
func (p *Profile) readInt(key string) int {
	raw, ok := p.get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		p.logger.Warn("corrupt stored value, using 0", "key", key, "value", raw)
		return 0
	}
	return n
}

// loadPlayerID returns the stored anonymous id, minting one on first run.
func (p *Profile) loadPlayerID() string {
	if raw, ok := p.get(KeyPlayerID); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	p.set(KeyPlayerID, id)
	return id
}

// PlayerID returns the anonymous id used for cloud calls.
func (p *Profile) PlayerID() string { return p.playerID }

// HighScore returns the best score ever recorded.
func (p *Profile) HighScore() int { return p.highScore }

// Orbs returns the currency balance.
func (p *Profile) Orbs() int { return p.orbs }

// Equipped returns the equipped trail id.
func (p *Profile) Equipped() string { return p.equipped }

// IsUnlocked reports whether the trail is owned.
func (p *Profile) IsUnlocked(id string) bool { return p.unlocked[id] }

// AddOrbs credits n orbs and persists the balance. Non-positive n is ignored.
func (p *Profile) AddOrbs(n int) {
	if n <= 0 {
		return
	}
	p.orbs += n
	p.save()
}

// RecordHighScore stores score if it beats the current best.
// Returns true if the best score changed.
func (p *Profile) RecordHighScore(score int) bool {
	if score <= p.highScore {
		return false
	}
	p.highScore = score
	p.set(KeyHighScore, strconv.Itoa(score))
	return true
}

// CanBuyTrail reports whether BuyTrail would succeed.
func (p *Profile) CanBuyTrail(id string) bool {
	t, ok := LookupTrail(id)
	if !ok || p.unlocked[id] {
		return false
	}
	return p.orbs >= t.Price
}

// BuyTrail deducts the price and unlocks the trail. It fails without any
// state change if the id is unknown, already owned or unaffordable.
func (p *Profile) BuyTrail(id string) bool {
	if !p.CanBuyTrail(id) {
		return false
	}
	t, _ := LookupTrail(id)
	p.orbs -= t.Price
	p.unlocked[id] = true
	p.save()
	return true
}

// EquipTrail selects an owned trail.
func (p *Profile) EquipTrail(id string) bool {
	if !p.unlocked[id] {
		return false
	}
	p.equipped = id
	p.save()
	return true
}

// save writes orbs, unlocks and the equipped trail.
func (p *Profile) save() {
	p.set(KeyOrbs, strconv.Itoa(p.orbs))

	data, err := json.Marshal(p.unlocked)
	if err != nil {
		p.logger.Error("cannot encode trail unlocks", "error", err)
	} else {
		p.set(KeyTrailUnlocks, string(data))
	}

	p.set(KeyEquippedTrail, p.equipped)
}

func (p *Profile) set(key, value string) {
	if err := p.kv.Set(key, value); err != nil {
		p.logger.Warn("profile save failed", "key", key, "error", err)
	}
}
