package profile

import "sync"

// KV is the persistence collaborator: a string key-value store.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Lookuper is implemented by stores that can tell a failed read from a
// missing key. Load uses it to report storage errors.
type Lookuper interface {
	Lookup(key string) (string, bool, error)
}

// Persisted keys.
const (
	KeyHighScore     = "highScore"
	KeyOrbs          = "orbs"
	KeyTrailUnlocks  = "trailUnlocks"
	KeyEquippedTrail = "equippedTrail"
	KeyPlayerID      = "playerId"
)

// MemoryKV is an in-memory KV, used for tests and headless runs.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// namespaced prefixes every key, giving several players one backing store.
type namespaced struct {
	prefix string
	kv     KV
}

// Namespace wraps kv so every key is stored as "<prefix>:<key>".
// An empty prefix returns kv unchanged.
func Namespace(kv KV, prefix string) KV {
	if prefix == "" {
		return kv
	}
	return namespaced{prefix: prefix, kv: kv}
}

func (n namespaced) Get(key string) (string, bool) {
	return n.kv.Get(n.prefix + ":" + key)
}

func (n namespaced) Lookup(key string) (string, bool, error) {
	if l, ok := n.kv.(Lookuper); ok {
		return l.Lookup(n.prefix + ":" + key)
	}
	v, ok := n.kv.Get(n.prefix + ":" + key)
	return v, ok, nil
}

func (n namespaced) Set(key, value string) error {
	return n.kv.Set(n.prefix+":"+key, value)
}
