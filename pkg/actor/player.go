package actor

import (
	"github.com/jwebster45206/d20"

	"github.com/jwebster45206/quest-engine/pkg/item"
)

const (
	BaseAttack       = 10
	BaseDefense      = 5
	BaseMaxHealth    = 100
	LevelHealthBonus = 10 // max health gained per level
	ExperienceStep   = 50 // added to the level-up threshold on each level

	startingGold       = 50
	startingExpToLevel = 100
	defaultPlayerName  = "Hero"
)

// Equipment holds the three equipment slots. Nil means the slot is empty.
type Equipment struct {
	Weapon    *item.Item `json:"weapon"`
	Armor     *item.Item `json:"armor"`
	Accessory *item.Item `json:"accessory"`
}

// Slot returns the item equipped in the slot for type t, or nil.
func (e Equipment) Slot(t item.Type) *item.Item {
	switch t {
	case item.TypeWeapon:
		return e.Weapon
	case item.TypeArmor:
		return e.Armor
	case item.TypeAccessory:
		return e.Accessory
	}
	return nil
}

// With returns a copy of e with the slot for t set to it.
func (e Equipment) With(t item.Type, it *item.Item) Equipment {
	switch t {
	case item.TypeWeapon:
		e.Weapon = it
	case item.TypeArmor:
		e.Armor = it
	case item.TypeAccessory:
		e.Accessory = it
	}
	return e
}

// Items returns the equipped items in slot order.
func (e Equipment) Items() []item.Item {
	var out []item.Item
	for _, it := range []*item.Item{e.Weapon, e.Armor, e.Accessory} {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// Player is the single adventurer of a game.
//
// Attack, Defense and MaxHealth are derived values: base stats for the
// player's level plus the bonuses of whatever is equipped. They are only
// ever changed through RecalculateStats or a level-up.
type Player struct {
	Name                  string    `json:"name"`
	Level                 int       `json:"level"`
	Health                int       `json:"health"`
	MaxHealth             int       `json:"max_health"`
	Attack                int       `json:"attack"`
	Defense               int       `json:"defense"`
	Experience            int       `json:"experience"`
	ExperienceToNextLevel int       `json:"experience_to_next_level"`
	Gold                  int       `json:"gold"`
	Equipment             Equipment `json:"equipment"`
}

// NewPlayer returns a fresh level 1 player.
func NewPlayer() Player {
	return Player{
		Name:                  defaultPlayerName,
		Level:                 1,
		Health:                BaseMaxHealth,
		MaxHealth:             BaseMaxHealth,
		Attack:                BaseAttack,
		Defense:               BaseDefense,
		Experience:            0,
		ExperienceToNextLevel: startingExpToLevel,
		Gold:                  startingGold,
	}
}

// BaseMaxHealthAt is the unequipped max health for a level.
func BaseMaxHealthAt(level int) int {
	return BaseMaxHealth + LevelHealthBonus*(max(level, 1)-1)
}

// DerivedStats computes attack, defense and max health from the player's
// level and equipment.
func (p Player) DerivedStats() (attack, defense, maxHealth int) {
	attack, defense, maxHealth = BaseAttack, BaseDefense, BaseMaxHealthAt(p.Level)
	if w := p.Equipment.Weapon; w != nil {
		attack += w.Stats.Attack
	}
	if a := p.Equipment.Armor; a != nil {
		defense += a.Stats.Defense
		maxHealth += a.Stats.Health
	}
	if acc := p.Equipment.Accessory; acc != nil {
		attack += acc.Stats.Attack
		defense += acc.Stats.Defense
		maxHealth += acc.Stats.Health
	}
	return attack, defense, maxHealth
}

// RecalculateStats refreshes the derived stats. Health is clamped to the new
// maximum but never raised.
func (p *Player) RecalculateStats() {
	p.Attack, p.Defense, p.MaxHealth = p.DerivedStats()
	p.Health = min(p.Health, p.MaxHealth)
}

// Equip puts it into its slot and returns whatever was there before, unless
// that was the same item. Consumables are rejected.
func (p *Player) Equip(it item.Item) (previous *item.Item, ok bool) {
	if !it.Type.IsEquipment() {
		return nil, false
	}
	if old := p.Equipment.Slot(it.Type); old != nil && old.ID != it.ID {
		previous = old
	}
	equipped := it
	p.Equipment = p.Equipment.With(it.Type, &equipped)
	p.RecalculateStats()
	return previous, true
}

// Unequip empties a slot and returns its item, or nil if it was empty.
func (p *Player) Unequip(slot item.Type) *item.Item {
	old := p.Equipment.Slot(slot)
	if old == nil {
		return nil
	}
	p.Equipment = p.Equipment.With(slot, nil)
	p.RecalculateStats()
	return old
}

// GainExperience adds exp and levels up at most once. On a level-up the
// excess carries over, the threshold grows by ExperienceStep, max health
// grows by LevelHealthBonus and the player is fully healed.
func (p *Player) GainExperience(exp int) (leveledUp bool) {
	total := p.Experience + exp
	if total < p.ExperienceToNextLevel {
		p.Experience = total
		return false
	}
	p.Level++
	p.Experience = total - p.ExperienceToNextLevel
	p.ExperienceToNextLevel += ExperienceStep
	p.MaxHealth += LevelHealthBonus
	p.Health = p.MaxHealth
	return true
}

// TakeDamage reduces health, never below 0.
func (p *Player) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	p.Health = applyHP("player", p.Health, p.MaxHealth, func(a *d20.Actor) { a.SubHP(n) })
}

// Heal increases health, never above MaxHealth.
func (p *Player) Heal(n int) {
	if n <= 0 {
		return
	}
	p.Health = applyHP("player", p.Health, p.MaxHealth, func(a *d20.Actor) { a.AddHP(n) })
}

// IsDefeated returns true once health reaches 0.
func (p Player) IsDefeated() bool {
	a, err := p.Combatant()
	return err != nil || a.IsKnockedOut()
}
