package triangle

// Preset is a canned triple bound to a number key.
type Preset struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	State State  `json:"state"`
}

// Apply returns the preset's state. It exists so callers can treat presets and
// slider moves the same way: a pure transition followed by one render.
func (p Preset) Apply() State { return p.State }

// Presets returns the built-in presets in key order.
func Presets() []Preset {
	return []Preset{
		{Key: "1", Name: "3-4-5", State: State{A: 3, B: 4, C: 5}},
		{Key: "2", Name: "5-12-13", State: State{A: 5, B: 12, C: 13}},
		{Key: "3", Name: "6-8-10", State: State{A: 6, B: 8, C: 10}},
	}
}

// PresetForKey looks up the preset bound to key. Only the exact keys "1", "2"
// and "3" match.
func PresetForKey(key string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
