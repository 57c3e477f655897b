package config

var Presets = map[string]map[string]*Config{
	"linear": {
		"default": {
			Problem: "linear", Kind: "scalar", T0: 1.0, TEnd: 1.5, H: 0.1,
			Init: InitState{Y: 5.0},
		},
		"fine": {
			Problem: "linear", Kind: "scalar", T0: 1.0, TEnd: 1.5, H: 0.01,
			Init: InitState{Y: 5.0},
		},
		"long": {
			Problem: "linear", Kind: "scalar", T0: 1.0, TEnd: 5.0, H: 0.05,
			Init: InitState{Y: 5.0},
		},
	},
	"logistic": {
		"default": {
			Problem: "logistic", Kind: "scalar", T0: 0.0, TEnd: 10.0, H: 0.05,
			Init: InitState{Y: 0.5},
		},
	},
	"harmonic": {
		"default": {
			Problem: "harmonic", Kind: "coupled", T0: 0.0, TEnd: 6.3, H: 0.01,
			Init: InitState{U: 1.0, V: 0.0},
		},
		"kicked": {
			Problem: "harmonic", Kind: "coupled", T0: 0.0, TEnd: 12.6, H: 0.01,
			Init: InitState{U: 0.0, V: 2.0},
		},
	},
	"damped": {
		"default": {
			Problem: "damped", Kind: "coupled", T0: 0.0, TEnd: 12.0, H: 0.01,
			Init: InitState{U: 1.0, V: 0.0},
		},
	},
	"forced": {
		"default": {
			Problem: "forced", Kind: "coupled", T0: 0.0, TEnd: 1.5, H: 0.1,
			Init: InitState{U: 1.0, V: -1.0},
		},
		"fine": {
			Problem: "forced", Kind: "coupled", T0: 0.0, TEnd: 1.5, H: 0.01,
			Init: InitState{U: 1.0, V: -1.0},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
