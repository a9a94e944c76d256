package tilemap

// Terrain is the closed 8-value ground type painted by the GIS loader.
// Walkability and the temperature target are fixed per variant.
type Terrain uint8

const (
	Road Terrain = iota
	Wall
	Floor
	Door
	Courtyard
	Garden
	Water
	Bridge

	numTerrains = 8
)

func (t Terrain) String() string {
	switch t {
	case Road:
		return "road"
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Door:
		return "door"
	case Courtyard:
		return "courtyard"
	case Garden:
		return "garden"
	case Water:
		return "water"
	case Bridge:
		return "bridge"
	}
	return "unknown"
}

// Walkable reports whether entities can stand on this terrain. Only walls
// and water block movement.
func (t Terrain) Walkable() bool {
	return t != Wall && t != Water
}

// terrain temperature targets the environment phase relaxes toward.
var terrainTemperature = [numTerrains]float32{
	Road:      16.0,
	Wall:      14.0,
	Floor:     18.0,
	Door:      17.0,
	Courtyard: 15.0,
	Garden:    13.0,
	Water:     9.0,
	Bridge:    12.0,
}

// TargetTemperature is the equilibrium temperature for this terrain.
func (t Terrain) TargetTemperature() float32 {
	if int(t) < len(terrainTemperature) {
		return terrainTemperature[t]
	}
	return DefaultTemperature
}
