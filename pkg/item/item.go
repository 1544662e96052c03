// Package item defines equipment and consumables and the generators that
// roll them.
package item

// Type is the kind of item, which also names the equipment slot it fits.
type Type string

const (
	TypeWeapon     Type = "weapon"
	TypeArmor      Type = "armor"
	TypeAccessory  Type = "accessory"
	TypeConsumable Type = "consumable"
)

// Types lists every item type in generation order.
var Types = []Type{TypeWeapon, TypeArmor, TypeAccessory, TypeConsumable}

// EquipmentTypes lists the types that occupy an equipment slot.
var EquipmentTypes = []Type{TypeWeapon, TypeArmor, TypeAccessory}

// IsEquipment reports whether items of this type can be equipped.
func (t Type) IsEquipment() bool {
	switch t {
	case TypeWeapon, TypeArmor, TypeAccessory:
		return true
	}
	return false
}

// Valid reports whether t is a known item type.
func (t Type) Valid() bool {
	return t.IsEquipment() || t == TypeConsumable
}

// Rarity controls an item's stat range and price multiplier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Effect tags what an item does when used.
type Effect string

const (
	EffectNone     Effect = ""
	EffectHeal     Effect = "heal"
	EffectDamage   Effect = "damage"
	EffectDefense  Effect = "defense"
	EffectCritical Effect = "critical"
)

// Stats is the bag of bonuses an item grants. A zero value means the item
// does not carry that stat.
type Stats struct {
	Attack     int `json:"attack,omitempty"`
	Defense    int `json:"defense,omitempty"`
	Health     int `json:"health,omitempty"`
	CritChance int `json:"crit_chance,omitempty"`
	HealAmount int `json:"heal_amount,omitempty"`
}

// Item is a piece of equipment or a consumable. Items are treated as values:
// moving one between inventory, shop and equipment never changes it.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Rarity      Rarity `json:"rarity"`
	Effect      Effect `json:"effect,omitempty"`
	Value       int    `json:"value"` // sell price
	Price       int    `json:"price"` // buy price
	Stats       Stats  `json:"stats"`
	Description string `json:"description"`
}

// CanHeal reports whether using the item restores health.
func (it Item) CanHeal() bool {
	return it.Type == TypeConsumable && it.Effect == EffectHeal && it.Stats.HealAmount > 0
}

// Without returns a copy of items with every item carrying id removed.
// The input slice is never modified.
func Without(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Append returns a new slice holding items followed by extra.
func Append(items []Item, extra ...Item) []Item {
	out := make([]Item, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}
