package config

// Presets are named K regimes of the standard map. K_c ≈ 0.9716 is the
// critical kick strength where the last invariant torus breaks.
var Presets = map[string]*Config{
	"regular": {
		K: 0.5, Steps: 500, Sims: 50, Tail: 100,
	},
	"critical": {
		K: 0.971635, Steps: 1000, Sims: 80, Tail: 200,
	},
	"mixed": {
		K: 1.5, Steps: 1000, Sims: 80, Tail: 200,
	},
	"chaotic": {
		K: 2.5, Steps: 2000, Sims: 100, Tail: 300,
	},
	"strong": {
		K: 6.0, Steps: 2000, Sims: 100, Tail: 300,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Sweep == (SweepConfig{}) {
		out.Sweep = DefaultConfig().Sweep
	}
	if out.Out == (OutConfig{}) {
		out.Out = DefaultConfig().Out
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
