package core

// Terrain is the kind of land covering one tile.
type Terrain uint8

const (
	TerrainPlains Terrain = iota
	TerrainHills
	TerrainForest
	TerrainDesert
	TerrainWater
	TerrainMountain
	TerrainCount // sentinel
)

var terrainNames = [TerrainCount]string{
	"Plains", "Hills", "Forest", "Desert", "Water", "Mountain",
}

func (t Terrain) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return terrainNames[t]
}

func (t Terrain) Valid() bool { return t < TerrainCount }
