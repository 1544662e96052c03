package item

import (
	"fmt"
	"math"
	"strings"

	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/ident"
)

var (
	weaponPrefixes    = []string{"Sharp", "Mighty", "Fierce", "Ancient", "Blessed", "Cursed", "Dragon", "Holy"}
	armorPrefixes     = []string{"Sturdy", "Heavy", "Light", "Mystic", "Sacred", "Dark", "Royal", "Divine"}
	accessoryPrefixes = []string{"Lucky", "Wise", "Swift", "Magical", "Enchanted", "Mysterious", "Powerful"}

	weaponWords     = []string{"Sword", "Axe", "Mace", "Dagger", "Staff", "Bow"}
	armorWords      = []string{"Plate", "Chain", "Leather", "Robe", "Shield"}
	accessoryWords  = []string{"Ring", "Amulet", "Belt", "Bracers", "Crown"}
	consumableWords = []string{"Potion", "Elixir", "Tonic"}
)

type rarityModifier struct {
	min, max float64
	price    float64
}

var rarityModifiers = map[Rarity]rarityModifier{
	RarityCommon:    {min: 1, max: 1.2, price: 1},
	RarityUncommon:  {min: 1.2, max: 1.5, price: 2},
	RarityRare:      {min: 1.5, max: 2, price: 4},
	RarityEpic:      {min: 2, max: 2.5, price: 8},
	RarityLegendary: {min: 2.5, max: 3, price: 16},
}

// RollRarity maps a roll in [0, 100) onto a rarity tier.
func RollRarity(roll float64) Rarity {
	switch {
	case roll < 50:
		return RarityCommon
	case roll < 80:
		return RarityUncommon
	case roll < 95:
		return RarityRare
	case roll < 99:
		return RarityEpic
	default:
		return RarityLegendary
	}
}

// Generate rolls a rarity and then an item of type t scaled to playerLevel.
func Generate(src dice.Source, t Type, playerLevel int) Item {
	return build(src, t, playerLevel, RollRarity(src.Float64()*100))
}

// GenerateWithRarity rolls an item of type t at a fixed rarity.
func GenerateWithRarity(src dice.Source, t Type, playerLevel int, rarity Rarity) Item {
	if _, ok := rarityModifiers[rarity]; !ok {
		rarity = RarityCommon
	}
	return build(src, t, playerLevel, rarity)
}

// RandomType picks one of the four item types uniformly.
func RandomType(src dice.Source) Type {
	return dice.Pick(src, Types)
}

// GenerateRandom rolls an item of a random type.
func GenerateRandom(src dice.Source, playerLevel int) Item {
	return Generate(src, RandomType(src), playerLevel)
}

func build(src dice.Source, t Type, playerLevel int, rarity Rarity) Item {
	stats := rollStats(src, t, rarity, playerLevel)
	name := rollName(src, t)
	price := int(math.Floor(float64(playerLevel*10) * rarityModifiers[rarity].price))

	var effect Effect
	if t == TypeConsumable {
		effect = EffectHeal
	}

	return Item{
		ID:          ident.New(),
		Name:        name,
		Type:        t,
		Rarity:      rarity,
		Effect:      effect,
		Value:       int(math.Floor(float64(price) * 0.8)),
		Price:       price,
		Stats:       stats,
		Description: Describe(stats),
	}
}

// rollIn draws floor(r*(hi-lo)+lo).
func rollIn(src dice.Source, lo, hi float64) int {
	return int(math.Floor(src.Float64()*(hi-lo) + lo))
}

func rollStats(src dice.Source, t Type, rarity Rarity, playerLevel int) Stats {
	mod := rarityModifiers[rarity]
	base := float64(max(1, int(math.Floor(float64(playerLevel)*mod.min))))
	top := float64(max(2, int(math.Floor(float64(playerLevel)*mod.max))))

	switch t {
	case TypeWeapon:
		return Stats{
			Attack:     rollIn(src, base, top),
			CritChance: int(math.Floor(src.Float64() * 5 * mod.min)),
		}
	case TypeArmor:
		return Stats{
			Defense: rollIn(src, base, top),
			Health:  rollIn(src, base*5, top*5),
		}
	case TypeAccessory:
		return Stats{
			Attack:  rollIn(src, base/2, top/2),
			Defense: rollIn(src, base/2, top/2),
			Health:  rollIn(src, base*2, top*2),
		}
	case TypeConsumable:
		return Stats{
			// The span runs from 5*base up to 10*top.
			HealAmount: int(math.Floor(src.Float64()*(top*10-base*5) + base*5)),
		}
	}
	return Stats{}
}

func rollName(src dice.Source, t Type) string {
	switch t {
	case TypeWeapon:
		return dice.Pick(src, weaponPrefixes) + " " + dice.Pick(src, weaponWords)
	case TypeArmor:
		return dice.Pick(src, armorPrefixes) + " " + dice.Pick(src, armorWords)
	case TypeAccessory:
		return dice.Pick(src, accessoryPrefixes) + " " + dice.Pick(src, accessoryWords)
	default:
		return "Health " + dice.Pick(src, consumableWords)
	}
}

// Describe lists an item's non-zero stat contributions.
func Describe(s Stats) string {
	var parts []string
	if s.Attack != 0 {
		parts = append(parts, fmt.Sprintf("Attack +%d", s.Attack))
	}
	if s.Defense != 0 {
		parts = append(parts, fmt.Sprintf("Defense +%d", s.Defense))
	}
	if s.Health != 0 {
		parts = append(parts, fmt.Sprintf("Health +%d", s.Health))
	}
	if s.CritChance != 0 {
		parts = append(parts, fmt.Sprintf("Crit Chance +%d%%", s.CritChance))
	}
	if s.HealAmount != 0 {
		parts = append(parts, fmt.Sprintf("Heals %d HP", s.HealAmount))
	}
	return strings.Join(parts, ", ")
}
