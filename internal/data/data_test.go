package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petiteville/server/internal/ai"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadActionConfig(t *testing.T) {
	path := writeFixture(t, "actions.yaml", `
actions:
  - action: Eat
    weight: 2.0
    cooldown_ticks: 3
    considerations:
      - axis: HungerRatio
        curve: {kind: Quadratic, slope: 1.0, exponent: 2.0}
      - axis: FoodNearby
        curve: {kind: Linear, slope: 3.0}
  - action: Idle
    weight: 1.0
    inertia_bonus: 0.05
    considerations:
      - axis: Constant
        value: 0.2
        curve: {kind: Linear, slope: 1.0}
`)
	cfg, err := LoadActionConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Actions) != 2 {
		t.Fatalf("loaded %d actions, want 2", len(cfg.Actions))
	}
	// Document order is the tie-break order and must survive loading.
	if cfg.Actions[0].Action != ai.Eat || cfg.Actions[1].Action != ai.Idle {
		t.Fatalf("action order = %v,%v", cfg.Actions[0].Action, cfg.Actions[1].Action)
	}
	eat := cfg.Actions[0]
	if eat.Weight != 2.0 || eat.CooldownTicks != 3 || len(eat.Considerations) != 2 {
		t.Fatalf("Eat def = %+v", eat)
	}
	if eat.Considerations[0].Curve.Kind != ai.Quadratic {
		t.Fatalf("first curve kind = %v, want Quadratic", eat.Considerations[0].Curve.Kind)
	}
	if cfg.Actions[1].InertiaBonus != 0.05 {
		t.Fatalf("inertia bonus = %v", cfg.Actions[1].InertiaBonus)
	}
}

func TestLoadActionConfigMissingFile(t *testing.T) {
	cfg, err := LoadActionConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(cfg.Actions) != 0 {
		t.Fatalf("missing file yielded %d actions, want empty config", len(cfg.Actions))
	}
}

func TestLoadActionConfigRejectsUnknownNames(t *testing.T) {
	cases := map[string]string{
		"unknown action": `
actions:
  - action: Sleep
    considerations:
      - axis: Constant
        curve: {kind: Linear}
`,
		"unknown axis": `
actions:
  - action: Eat
    considerations:
      - axis: Sleepiness
        curve: {kind: Linear}
`,
		"unknown curve": `
actions:
  - action: Eat
    considerations:
      - axis: Constant
        curve: {kind: Sigmoid}
`,
		"not yaml": "actions: [",
	}
	for name, content := range cases {
		path := writeFixture(t, "bad.yaml", content)
		if _, err := LoadActionConfig(path); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestLoadSpeciesTable(t *testing.T) {
	path := writeFixture(t, "species.yaml", `
species:
  - key: villager
    name: Villager
    icon: "V"
    max_hunger: 1000
    max_health: 40
    gait_cooldowns: [0, 2, 1, 1, 1, 1]
  - key: bread
    name: Bread
    icon: "b"
    nutrition: 30
`)
	tbl, err := LoadSpeciesTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("loaded %d species, want 2", tbl.Count())
	}
	v := tbl.Get("villager")
	if v == nil || v.MaxHunger != 1000 {
		t.Fatalf("villager = %+v", v)
	}
	if v.IconRune() != 'V' {
		t.Fatalf("icon rune = %q", v.IconRune())
	}
	profile := v.Profile()
	if profile[ai.Wander] != 2 || profile[ai.Idle] != 0 {
		t.Fatalf("profile = %v", profile)
	}
	if tbl.Get("ghost") != nil {
		t.Fatal("lookup of unknown key returned a species")
	}
}

func TestLoadSpeciesTableRejectsBadEntries(t *testing.T) {
	noKey := writeFixture(t, "species.yaml", `
species:
  - name: Nameless
`)
	if _, err := LoadSpeciesTable(noKey); err == nil {
		t.Error("entry without key accepted")
	}

	tooMany := writeFixture(t, "species.yaml", `
species:
  - key: fast
    gait_cooldowns: [1, 1, 1, 1, 1, 1, 1]
`)
	if _, err := LoadSpeciesTable(tooMany); err == nil {
		t.Error("oversized gait profile accepted")
	}
}

func TestLoadSpawnList(t *testing.T) {
	path := writeFixture(t, "spawn.yaml", `
spawns:
  - species: villager
    x: 10
    y: 12
    count: 3
  - species: bread
    x: 11
    y: 12
`)
	spawns, err := LoadSpawnList(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(spawns) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(spawns))
	}
	if spawns[0].Count != 3 {
		t.Fatalf("count = %d, want 3", spawns[0].Count)
	}
	// Omitted count defaults to one instance, not zero.
	if spawns[1].Count != 1 {
		t.Fatalf("defaulted count = %d, want 1", spawns[1].Count)
	}

	spawns, err = LoadSpawnList(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil || spawns != nil {
		t.Fatalf("missing file: %v, %v; want empty, nil", spawns, err)
	}
}

func TestLoadDistrictTable(t *testing.T) {
	path := writeFixture(t, "districts.yaml", `
quartiers:
  - {id: 1, name: Le Marais}
  - {id: 2, name: Montmartre}
buildings:
  - {id: 100, name: Boulangerie}
blocks:
  - {id: 7, name: Rue des Rosiers}
`)
	tbl, err := LoadDistrictTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Quartiers[1] != "Le Marais" || tbl.Buildings[100] != "Boulangerie" || tbl.Blocks[7] != "Rue des Rosiers" {
		t.Fatalf("table = %+v", tbl)
	}
	if tbl.Count() != 4 {
		t.Fatalf("count = %d, want 4", tbl.Count())
	}

	// Quartier 0 means "unassigned" on the map and may not be named.
	reserved := writeFixture(t, "districts.yaml", `
quartiers:
  - {id: 0, name: Nowhere}
`)
	if _, err := LoadDistrictTable(reserved); err == nil {
		t.Error("reserved quartier id 0 accepted")
	}

	empty, err := LoadDistrictTable(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil || empty.Count() != 0 {
		t.Fatalf("missing file: %v, %v; want empty tables", empty, err)
	}
}
