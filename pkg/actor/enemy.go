package actor

import (
	"math"

	"github.com/jwebster45206/d20"

	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/ident"
)

// DropThreshold is the drop chance an enemy must exceed to leave loot.
const DropThreshold = 0.7

// Enemy is a creature the player fights.
type Enemy struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Health     int     `json:"health"`
	MaxHealth  int     `json:"max_health"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	Level      int     `json:"level"`
	ExpReward  int     `json:"exp_reward"`
	GoldReward int     `json:"gold_reward"`
	DropChance float64 `json:"drop_chance"` // rolled when a battle starts
}

// Archetype is a base enemy from the roster.
type Archetype struct {
	Name        string
	BaseHealth  int
	BaseAttack  int
	BaseDefense int
	Difficulty  int // tier 1-6
}

// Roster is the fixed list of enemy archetypes.
var Roster = []Archetype{
	{Name: "Goblin", BaseHealth: 30, BaseAttack: 5, BaseDefense: 2, Difficulty: 1},
	{Name: "Wolf", BaseHealth: 25, BaseAttack: 8, BaseDefense: 1, Difficulty: 1},
	{Name: "Skeleton", BaseHealth: 35, BaseAttack: 6, BaseDefense: 3, Difficulty: 2},
	{Name: "Orc", BaseHealth: 45, BaseAttack: 9, BaseDefense: 4, Difficulty: 3},
	{Name: "Troll", BaseHealth: 60, BaseAttack: 12, BaseDefense: 5, Difficulty: 4},
	{Name: "Dragon", BaseHealth: 100, BaseAttack: 18, BaseDefense: 8, Difficulty: 6},
}

// MaxDifficulty is the highest archetype tier a player of this level meets.
func MaxDifficulty(playerLevel int) int {
	return max(1, playerLevel/2+1)
}

// Available filters the roster down to archetypes suited to playerLevel.
func Available(playerLevel int) []Archetype {
	limit := MaxDifficulty(playerLevel)
	var out []Archetype
	for _, a := range Roster {
		if a.Difficulty <= limit {
			out = append(out, a)
		}
	}
	return out
}

// GenerateEnemy rolls an enemy for a player of the given level: an archetype
// from the available roster at playerLevel-1, playerLevel or playerLevel+1.
func GenerateEnemy(src dice.Source, playerLevel int) Enemy {
	arch := dice.Pick(src, Available(playerLevel))
	level := max(1, playerLevel+src.IntN(3)-1)
	return arch.Spawn(level)
}

// Spawn builds an enemy of this archetype at a level.
func (a Archetype) Spawn(level int) Enemy {
	mult := 1 + float64(level-1)*0.1
	health := scale(a.BaseHealth, mult)
	return Enemy{
		ID:         ident.New(),
		Name:       a.Name,
		Level:      level,
		Health:     health,
		MaxHealth:  health,
		Attack:     scale(a.BaseAttack, mult),
		Defense:    scale(a.BaseDefense, mult),
		ExpReward:  15 * level * a.Difficulty,
		GoldReward: 10 * level * a.Difficulty,
	}
}

func scale(n int, mult float64) int {
	return int(math.Floor(float64(n) * mult))
}

// TakeDamage reduces the enemy's health, never below 0.
func (e *Enemy) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.Health = applyHP(e.combatantID(), e.Health, e.MaxHealth, func(a *d20.Actor) { a.SubHP(n) })
}

// IsDefeated returns true once health reaches 0.
func (e Enemy) IsDefeated() bool {
	a, err := e.Combatant()
	return err != nil || a.IsKnockedOut()
}

// DropsLoot reports whether the enemy's drop roll beats DropThreshold.
func (e Enemy) DropsLoot() bool {
	return e.DropChance > DropThreshold
}
