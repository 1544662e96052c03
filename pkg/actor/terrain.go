package actor

// Terrain is the kind of map tile an encounter happens on.
type Terrain string

const (
	TerrainPlains   Terrain = "plains"
	TerrainForest   Terrain = "forest"
	TerrainMountain Terrain = "mountain"
	TerrainCrypt    Terrain = "crypt"
	TerrainCastle   Terrain = "castle"
)

// Valid reports whether t is a known terrain.
func (t Terrain) Valid() bool {
	switch t {
	case TerrainPlains, TerrainForest, TerrainMountain, TerrainCrypt, TerrainCastle:
		return true
	}
	return false
}

// ApplyTerrain returns e adjusted for where it was met: mountain enemies hit
// harder, crypt enemies are tougher to hurt and forest enemies have more
// health. Other terrains leave the enemy as is.
func ApplyTerrain(e Enemy, t Terrain) Enemy {
	switch t {
	case TerrainMountain:
		e.Name = "Dragon " + e.Name
		e.Attack = scale(e.Attack, 1.2)
	case TerrainCrypt:
		e.Name = "Undead " + e.Name
		e.Defense = scale(e.Defense, 1.2)
	case TerrainForest:
		e.Name = "Wild " + e.Name
		e.MaxHealth = scale(e.MaxHealth, 1.1)
		e.Health = e.MaxHealth
	}
	return e
}
