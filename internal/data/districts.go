package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// District registries produced by the GIS side: quartier names plus building
// and block labels. The core treats everything here as opaque lookups.

type namedU8 struct {
	ID   uint8  `yaml:"id"`
	Name string `yaml:"name"`
}

type namedU16 struct {
	ID   uint16 `yaml:"id"`
	Name string `yaml:"name"`
}

type namedU32 struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`
}

type districtFile struct {
	Quartiers []namedU8  `yaml:"quartiers"`
	Buildings []namedU32 `yaml:"buildings"`
	Blocks    []namedU16 `yaml:"blocks"`
}

// DistrictTable holds the quartier/building/block name registries.
type DistrictTable struct {
	Quartiers map[uint8]string
	Buildings map[uint32]string
	Blocks    map[uint16]string
}

// LoadDistrictTable loads the registries. A missing file yields empty
// tables; ids then render without names.
func LoadDistrictTable(path string) (*DistrictTable, error) {
	t := &DistrictTable{
		Quartiers: make(map[uint8]string),
		Buildings: make(map[uint32]string),
		Blocks:    make(map[uint16]string),
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read district table %s: %w", path, err)
	}
	var file districtFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse district table: %w", err)
	}
	for _, q := range file.Quartiers {
		if q.ID == 0 {
			return nil, fmt.Errorf("district table: quartier id 0 is reserved for unassigned")
		}
		t.Quartiers[q.ID] = q.Name
	}
	for _, b := range file.Buildings {
		t.Buildings[b.ID] = b.Name
	}
	for _, b := range file.Blocks {
		t.Blocks[b.ID] = b.Name
	}
	return t, nil
}

func (t *DistrictTable) Count() int {
	return len(t.Quartiers) + len(t.Buildings) + len(t.Blocks)
}
