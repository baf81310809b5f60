package config

import (
	"sort"

	"github.com/san-kum/hrfsim/internal/session"
)

func preset(mutate func(p *session.ParameterSet)) session.ParameterSet {
	p := session.DefaultParameterSet()
	mutate(&p)
	return p
}

// Presets are named starting points for the parameter set.
var Presets = map[string]session.ParameterSet{
	"canonical": session.DefaultParameterSet(),
	"fast": preset(func(p *session.ParameterSet) {
		p.Title, p.Delay, p.Undershoot = "fast hrf", 4, 12
	}),
	"slow": preset(func(p *session.ParameterSet) {
		p.Title, p.Delay, p.Undershoot, p.TimeLength = "slow hrf", 8, 20, 40
	}),
	"no_undershoot": preset(func(p *session.ParameterSet) {
		p.Title, p.Ratio = "no undershoot", 0.01
	}),
	"broad": preset(func(p *session.ParameterSet) {
		p.Title, p.Dispersion, p.UDispersion = "broad hrf", 2, 2
	}),
	"delayed": preset(func(p *session.ParameterSet) {
		p.Title, p.Onset = "delayed onset", 3
	}),
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (session.ParameterSet, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
