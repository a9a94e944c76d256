package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petiteville/server/internal/ai"
)

// Species is an entity template: the set of components a spawned instance
// starts with. Templates with Nutrition > 0 are edible; templates with
// Attack > 0 are combatants.
type Species struct {
	Key        string  `yaml:"key"`
	Name       string  `yaml:"name"`
	Icon       string  `yaml:"icon"`
	MaxHunger  int32   `yaml:"max_hunger"`
	MaxHealth  int32   `yaml:"max_health"`
	Attack     int32   `yaml:"attack"`
	Defense    int32   `yaml:"defense"`
	Aggression float64 `yaml:"aggression"`
	Nutrition  int32   `yaml:"nutrition"`
	// GaitCooldowns lists the six movement cooldowns in ActionId order:
	// Idle, Wander, Eat, Attack, Charge, Flee.
	GaitCooldowns []uint32 `yaml:"gait_cooldowns"`
}

// IconRune returns the first rune of the icon string, or '?' when unset.
func (sp *Species) IconRune() rune {
	for _, r := range sp.Icon {
		return r
	}
	return '?'
}

// Profile returns the gait cooldowns as a fixed-size array, zero-padded.
func (sp *Species) Profile() [ai.NumActions]uint32 {
	var out [ai.NumActions]uint32
	for i := 0; i < len(sp.GaitCooldowns) && i < ai.NumActions; i++ {
		out[i] = sp.GaitCooldowns[i]
	}
	return out
}

type speciesFile struct {
	Species []Species `yaml:"species"`
}

// SpeciesTable provides template lookups by key.
type SpeciesTable struct {
	byKey map[string]*Species
}

// LoadSpeciesTable loads entity templates from YAML.
func LoadSpeciesTable(path string) (*SpeciesTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read species list %s: %w", path, err)
	}
	var file speciesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse species list: %w", err)
	}
	t := &SpeciesTable{byKey: make(map[string]*Species, len(file.Species))}
	for i := range file.Species {
		sp := &file.Species[i]
		if sp.Key == "" {
			return nil, fmt.Errorf("species list: entry %d has no key", i)
		}
		if len(sp.GaitCooldowns) > ai.NumActions {
			return nil, fmt.Errorf("species %s: %d gait cooldowns, want at most %d",
				sp.Key, len(sp.GaitCooldowns), ai.NumActions)
		}
		t.byKey[sp.Key] = sp
	}
	return t, nil
}

func (t *SpeciesTable) Count() int { return len(t.byKey) }

// Get returns the template for a key, or nil if not found.
func (t *SpeciesTable) Get(key string) *Species {
	return t.byKey[key]
}
