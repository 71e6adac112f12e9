package profile

// DefaultTrailID is the trail every profile owns from the start.
const DefaultTrailID = "default"

// Trail is a purchasable cosmetic trail. Colors are the ribbon's head and
// tail colors as hex strings.
type Trail struct {
	ID        string
	Name      string
	Price     int
	Primary   string
	Secondary string
}

// catalog is ordered by shop position.
var catalog = []Trail{
	{ID: DefaultTrailID, Name: "Default Ribbon", Price: 0, Primary: "#00ffff", Secondary: "#0088ff"},
	{ID: "pixel", Name: "Retro Pixel Trail", Price: 100, Primary: "#00ffff", Secondary: "#00ff88"},
	{ID: "demon", Name: "Blood Demon Trail", Price: 500, Primary: "#ff0000", Secondary: "#ff6600"},
	{ID: "fire", Name: "Fire Jet", Price: 500, Primary: "#ff4500", Secondary: "#ffff00"},
	{ID: "ice", Name: "Ice Shards", Price: 500, Primary: "#a0ffff", Secondary: "#ffffff"},
	{ID: "dust", Name: "Earth Dust", Price: 500, Primary: "#cbd5f5", Secondary: "#9ca3af"},
	{ID: "lightning", Name: "Lightning Crackle", Price: 750, Primary: "#7df9ff", Secondary: "#ffffff"},
	{ID: "poison", Name: "Poison Mist", Price: 750, Primary: "#22c55e", Secondary: "#a3e635"},
	{ID: "gold", Name: "Gold Royal Trail", Price: 1000, Primary: "#ffd700", Secondary: "#ff8c00"},
	{ID: "shadow", Name: "Shadow Smoke", Price: 1500, Primary: "#111827", Secondary: "#4b5563"},
	{ID: "soul", Name: "Soul Flames", Price: 2000, Primary: "#6366f1", Secondary: "#22d3ee"},
	{ID: "aurora", Name: "Aurora Ribbon", Price: 2500, Primary: "#22c1c3", Secondary: "#fdbb2d"},
	{ID: "galaxy", Name: "Galaxy Nebula", Price: 5000, Primary: "#8b5cf6", Secondary: "#22d3ee"},
	{ID: "diamond", Name: "Diamond Sparkle", Price: 6000, Primary: "#e0f2fe", Secondary: "#ffffff"},
	{ID: "solar", Name: "Solar Flare", Price: 8000, Primary: "#fff000", Secondary: "#ff4b1f"},
}

// Catalog returns a copy of the trail shop in display order.
func Catalog() []Trail {
	out := make([]Trail, len(catalog))
	copy(out, catalog)
	return out
}

// LookupTrail finds a trail by id.
func LookupTrail(id string) (Trail, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Trail{}, false
}
