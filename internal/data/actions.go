package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petiteville/server/internal/ai"
)

// Decision config loader. The YAML document enumerates, per action, its
// considerations (axis + curve + parameters), weight, cooldown and inertia
// bonus. Document order is preserved: it is the scoring tie-break order.

type actionFile struct {
	Actions []actionEntry `yaml:"actions"`
}

type actionEntry struct {
	Action         string              `yaml:"action"`
	Weight         float64             `yaml:"weight"`
	CooldownTicks  uint32              `yaml:"cooldown_ticks"`
	InertiaBonus   float64             `yaml:"inertia_bonus"`
	Considerations []considerationSpec `yaml:"considerations"`
}

type considerationSpec struct {
	Axis  string    `yaml:"axis"`
	Value float64   `yaml:"value"` // Constant axis only
	Curve curveSpec `yaml:"curve"`
}

type curveSpec struct {
	Kind     string  `yaml:"kind"`
	Slope    float64 `yaml:"slope"`
	Offset   float64 `yaml:"offset"`
	Exponent float64 `yaml:"exponent"`
}

// LoadActionConfig reads the decision document. A missing file is not an
// error: it yields an empty config, which degrades every entity to Idle.
// A present but malformed file is an error; silent misconfiguration would be
// worse than a failed boot.
func LoadActionConfig(path string) (*ai.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ai.Config{}, nil
		}
		return nil, fmt.Errorf("read action config %s: %w", path, err)
	}
	var file actionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse action config: %w", err)
	}

	cfg := &ai.Config{Actions: make([]ai.ActionDef, 0, len(file.Actions))}
	for _, e := range file.Actions {
		id, ok := ai.ParseActionId(e.Action)
		if !ok {
			return nil, fmt.Errorf("action config: unknown action %q", e.Action)
		}
		def := ai.ActionDef{
			Action:        id,
			Weight:        e.Weight,
			CooldownTicks: e.CooldownTicks,
			InertiaBonus:  e.InertiaBonus,
		}
		for _, c := range e.Considerations {
			axis, ok := ai.ParseAxis(c.Axis)
			if !ok {
				return nil, fmt.Errorf("action config: %s: unknown axis %q", e.Action, c.Axis)
			}
			kind, ok := ai.ParseCurveKind(c.Curve.Kind)
			if !ok {
				return nil, fmt.Errorf("action config: %s: unknown curve %q", e.Action, c.Curve.Kind)
			}
			def.Considerations = append(def.Considerations, ai.Consideration{
				Axis:  axis,
				Value: c.Value,
				Curve: ai.Curve{
					Kind:     kind,
					Slope:    c.Curve.Slope,
					Offset:   c.Curve.Offset,
					Exponent: c.Curve.Exponent,
				},
			})
		}
		cfg.Actions = append(cfg.Actions, def)
	}
	return cfg, nil
}
