package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry places Count instances of a species at a tile at boot, before
// scenario scripts run.
type SpawnEntry struct {
	Species string `yaml:"species"`
	X       int32  `yaml:"x"`
	Y       int32  `yaml:"y"`
	Count   int    `yaml:"count"`
}

type spawnFile struct {
	Spawns []SpawnEntry `yaml:"spawns"`
}

// LoadSpawnList loads the initial population. A missing file means an empty
// world; scripts can still populate it.
func LoadSpawnList(path string) ([]SpawnEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read spawn list %s: %w", path, err)
	}
	var file spawnFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse spawn list: %w", err)
	}
	for i := range file.Spawns {
		if file.Spawns[i].Count == 0 {
			file.Spawns[i].Count = 1
		}
	}
	return file.Spawns, nil
}
