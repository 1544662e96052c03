package actor

import (
	"fmt"

	"github.com/jwebster45206/d20"
)

// Damage is what a hit with attack deals through defense. It is never below 1.
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}

// PlayerStrike is the damage the player deals to e with one attack.
func PlayerStrike(p Player, e Enemy) int {
	return Damage(p.Attack, e.Defense)
}

// EnemyStrike is the damage e deals to the player with one attack.
func EnemyStrike(e Enemy, p Player) int {
	return Damage(e.Attack, p.Defense)
}

// combatant builds the d20 actor that keeps one side's hit points. Health
// outside [0, maxHealth] is clamped into it.
func combatant(id string, health, maxHealth int) (*d20.Actor, error) {
	a, err := d20.NewActor(id).WithHP(maxHealth).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build combatant %s: %w", id, err)
	}
	if err := a.SetHP(min(max(health, 0), maxHealth)); err != nil {
		return nil, fmt.Errorf("failed to set HP for %s: %w", id, err)
	}
	return a, nil
}

// applyHP runs change on the combatant and returns the health it ends with.
// A side without positive max health has nothing left and ends at 0.
func applyHP(id string, health, maxHealth int, change func(*d20.Actor)) int {
	a, err := combatant(id, health, maxHealth)
	if err != nil {
		return 0
	}
	change(a)
	return a.HP()
}

// Combatant returns the player as a d20 actor.
func (p Player) Combatant() (*d20.Actor, error) {
	return combatant("player", p.Health, p.MaxHealth)
}

// Combatant returns the enemy as a d20 actor.
func (e Enemy) Combatant() (*d20.Actor, error) {
	return combatant(e.combatantID(), e.Health, e.MaxHealth)
}

func (e Enemy) combatantID() string {
	if e.ID == "" {
		return "enemy"
	}
	return e.ID
}
