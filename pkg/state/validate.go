package state

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/quest-engine/pkg/item"
)

var ErrInvalidState = errors.New("invalid game state")

// Validate checks the invariants every reachable state satisfies. States
// that come from outside the reducer, such as save files or actions carrying
// client-built enemies and items, can break them.
func (gs GameState) Validate() error {
	var problems []error

	if !gs.Screen.Valid() {
		problems = append(problems, fmt.Errorf("unknown screen %q", gs.Screen))
	}

	p := gs.Player
	if p.Level < 1 {
		problems = append(problems, fmt.Errorf("player level %d is below 1", p.Level))
	}
	if p.Health < 0 || p.Health > p.MaxHealth {
		problems = append(problems, fmt.Errorf("player health %d outside [0, %d]", p.Health, p.MaxHealth))
	}
	if attack, defense, maxHealth := p.DerivedStats(); attack != p.Attack || defense != p.Defense || maxHealth != p.MaxHealth {
		problems = append(problems, fmt.Errorf("player stats %d/%d/%d do not match equipment (want %d/%d/%d)",
			p.Attack, p.Defense, p.MaxHealth, attack, defense, maxHealth))
	}
	for _, slot := range item.EquipmentTypes {
		if it := p.Equipment.Slot(slot); it != nil && it.Type != slot {
			problems = append(problems, fmt.Errorf("%s slot holds %s %q", slot, it.Type, it.ID))
		}
	}

	if e := gs.CurrentEnemy; e != nil && (e.Health < 0 || e.Health > e.MaxHealth) {
		problems = append(problems, fmt.Errorf("enemy health %d outside [0, %d]", e.Health, e.MaxHealth))
	}

	owners := make(map[string]string)
	claim := func(owner string, items []item.Item) {
		for _, it := range items {
			if prev, ok := owners[it.ID]; ok {
				problems = append(problems, fmt.Errorf("item %q is in both %s and %s", it.ID, prev, owner))
				continue
			}
			owners[it.ID] = owner
		}
	}
	claim("equipment", p.Equipment.Items())
	claim("inventory", gs.Inventory)
	claim("shop", gs.ShopInventory)

	seen := make(map[string]bool, len(gs.Quests))
	for _, q := range gs.Quests {
		if seen[q.ID] {
			problems = append(problems, fmt.Errorf("quest %q is listed twice", q.ID))
		}
		seen[q.ID] = true
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidState, errors.Join(problems...))
}
