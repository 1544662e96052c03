package event

import (
	"math"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/item"
)

type Type string

const (
	TypeBattle   Type = "battle"
	TypeItem     Type = "item"
	TypeAccident Type = "accident"
	TypeBoon     Type = "boon"
)

// Types lists event types in draw order.
var Types = []Type{TypeBattle, TypeItem, TypeAccident, TypeBoon}

// Effect holds what resolving an event does to the player. Zero fields
// have no effect.
type Effect struct {
	Health     int        `json:"health,omitempty"`
	Gold       int        `json:"gold,omitempty"`
	Experience int        `json:"experience,omitempty"`
	Item       *item.Item `json:"item,omitempty"`
}

// GameEvent is something that happens while exploring the map.
type GameEvent struct {
	Type        Type   `json:"type"`
	Description string `json:"description"`
	Effect      Effect `json:"effect"`
}

var accidents = []string{
	"You stumbled and fell",
	"You triggered a trap",
	"You were ambushed by bandits",
	"You ate some poisonous berries",
}

type boon struct {
	desc   string
	effect Effect
}

// Generate rolls a random event for a player of the given level.
func Generate(src dice.Source, playerLevel int) GameEvent {
	switch dice.Pick(src, Types) {
	case TypeItem:
		it := item.GenerateRandom(src, playerLevel)
		return GameEvent{
			Type:        TypeItem,
			Description: "You found a " + it.Name + "!",
			Effect:      Effect{Item: &it},
		}

	case TypeAccident:
		damage := src.IntN(20) + 10
		return GameEvent{
			Type:        TypeAccident,
			Description: dice.Pick(src, accidents) + "!",
			Effect:      Effect{Health: -damage},
		}

	case TypeBoon:
		// all amounts are rolled before the boon is chosen
		boons := []boon{
			{"You found a treasure chest", Effect{Gold: roll(src, 50, 50)}},
			{"You helped a merchant", Effect{Gold: roll(src, 30, 20)}},
			{"You discovered ancient knowledge", Effect{Experience: roll(src, 30, 20)}},
			{"You rested at a healing spring", Effect{Health: 20}},
		}
		b := dice.Pick(src, boons)
		return GameEvent{
			Type:        TypeBoon,
			Description: b.desc + "!",
			Effect:      b.effect,
		}

	default:
		return GameEvent{
			Type:        TypeBattle,
			Description: "You encountered an enemy!",
		}
	}
}

func roll(src dice.Source, spread, floor int) int {
	return int(math.Floor(src.Float64()*float64(spread))) + floor
}

// Explore is one step on the map: an event at the player's level and, for
// battle events, an enemy adjusted to the terrain the player is on.
func Explore(src dice.Source, playerLevel int, terrain actor.Terrain) (GameEvent, *actor.Enemy) {
	ev := Generate(src, playerLevel)
	if ev.Type != TypeBattle {
		return ev, nil
	}
	enemy := actor.ApplyTerrain(actor.GenerateEnemy(src, playerLevel), terrain)
	return ev, &enemy
}
