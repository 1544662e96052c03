package state

import (
	"fmt"
	"slices"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/item"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

// Reducer applies actions to game states. Its only dependency is the random
// source handed to the generators; it holds no game state of its own apart
// from the fixed state RESET_GAME returns to.
type Reducer struct {
	src     dice.Source
	initial GameState
}

// NewReducer returns a reducer drawing from src, or from the process-wide
// source when src is nil. The initial state is rolled once here.
func NewReducer(src dice.Source) *Reducer {
	if src == nil {
		src = dice.Default()
	}
	return &Reducer{src: src, initial: New(src)}
}

// Initial returns a copy of the state every game starts from and returns to
// on reset.
func (r *Reducer) Initial() GameState {
	return r.initial.Clone()
}

// Reduce returns the state that follows gs once a has happened. Actions that
// do not apply to gs return it unchanged.
func (r *Reducer) Reduce(gs GameState, a Action) GameState {
	switch a := a.(type) {
	case TriggerEvent:
		ev := a.Event
		gs.CurrentEvent = &ev
		return gs

	case ResolveEvent:
		return r.resolveEvent(gs)

	case ChangeScreen:
		gs.Screen = a.Screen
		if a.Screen == ScreenBattle {
			gs.BattleLog = []string{}
		}
		return gs

	case StartBattle:
		return r.startBattle(gs, a.Enemy)

	case PlayerAttack:
		return r.playerAttack(gs)

	case EnemyAttack:
		return r.enemyAttack(gs)

	case FleeBattle:
		if gs.CurrentEnemy == nil {
			return gs
		}
		gs.BattleLog = appendLog(gs.BattleLog, fmt.Sprintf("You fled from the %s!", gs.CurrentEnemy.Name))
		gs.CurrentEnemy = nil
		gs.Screen = ScreenMap
		return gs

	case UseItem:
		if !a.Item.CanHeal() {
			return gs
		}
		gs.Player.Heal(a.Item.Stats.HealAmount)
		gs.Inventory = item.Without(gs.Inventory, a.Item.ID)
		gs.BattleLog = appendLog(gs.BattleLog,
			fmt.Sprintf("You used %s and recovered %d health!", a.Item.Name, a.Item.Stats.HealAmount))
		return gs

	case EquipItem:
		previous, ok := gs.Player.Equip(a.Item)
		if !ok {
			return gs
		}
		gs.Inventory = item.Without(gs.Inventory, a.Item.ID)
		if previous != nil {
			gs.Inventory = item.Append(gs.Inventory, *previous)
		}
		return gs

	case UnequipItem:
		old := gs.Player.Unequip(a.Slot)
		if old == nil {
			return gs
		}
		gs.Inventory = item.Append(gs.Inventory, *old)
		return gs

	case BuyItem:
		if gs.Player.Gold < a.Item.Price {
			return gs
		}
		gs.Player.Gold -= a.Item.Price
		gs.Inventory = item.Append(gs.Inventory, a.Item)
		gs.ShopInventory = item.Without(gs.ShopInventory, a.Item.ID)
		return gs

	case SellItem:
		gs.Player.Gold += a.Item.Value
		gs.Inventory = item.Without(gs.Inventory, a.Item.ID)
		return gs

	case RefreshShop:
		gs.ShopInventory = item.GenerateShopInventory(r.src, gs.Player.Level)
		return gs

	case AddToInventory:
		gs.Inventory = item.Append(gs.Inventory, a.Item)
		return gs

	case RemoveFromInventory:
		gs.Inventory = item.Without(gs.Inventory, a.ItemID)
		return gs

	case StartQuest:
		q := cloneQuest(a.Quest)
		gs.CurrentQuest = &q
		gs.Screen = ScreenQuest
		return gs

	case CompleteQuest:
		return r.completeQuest(gs)

	case ResetGame:
		return r.Initial()
	}
	return gs
}

func (r *Reducer) resolveEvent(gs GameState) GameState {
	if gs.CurrentEvent == nil {
		return gs
	}
	effect := gs.CurrentEvent.Effect

	// events can hurt but never finish off the player
	if effect.Health != 0 {
		gs.Player.Health = max(1, min(gs.Player.MaxHealth, gs.Player.Health+effect.Health))
	}
	if effect.Gold != 0 {
		gs.Player.Gold = max(0, gs.Player.Gold+effect.Gold)
	}
	if effect.Experience != 0 {
		gs.Player.GainExperience(effect.Experience)
	}
	if effect.Item != nil {
		gs.Inventory = item.Append(gs.Inventory, *effect.Item)
	}
	gs.CurrentEvent = nil
	return gs
}

func (r *Reducer) startBattle(gs GameState, enemy *actor.Enemy) GameState {
	var e actor.Enemy
	if enemy != nil {
		e = *enemy
	} else {
		e = actor.GenerateEnemy(r.src, gs.Player.Level)
	}
	e.DropChance = r.src.Float64()

	gs.Screen = ScreenBattle
	gs.CurrentEnemy = &e
	gs.BattleLog = []string{fmt.Sprintf("A %s appears!", e.Name)}
	return gs
}

func (r *Reducer) playerAttack(gs GameState) GameState {
	if gs.CurrentEnemy == nil {
		return gs
	}
	enemy := *gs.CurrentEnemy
	damage := actor.PlayerStrike(gs.Player, enemy)
	enemy.TakeDamage(damage)

	log := appendLog(gs.BattleLog, fmt.Sprintf("You attack the %s for %d damage!", enemy.Name, damage))

	if !enemy.IsDefeated() {
		gs.CurrentEnemy = &enemy
		gs.BattleLog = log
		return gs
	}

	if enemy.DropsLoot() {
		drop := item.GenerateRandom(r.src, gs.Player.Level)
		log = append(log, fmt.Sprintf("The %s dropped a %s!", enemy.Name, drop.Name))
		gs.Inventory = item.Append(gs.Inventory, drop)
	}

	gs.Player.Gold += enemy.GoldReward
	leveledUp := gs.Player.GainExperience(enemy.ExpReward)

	log = append(log,
		fmt.Sprintf("You defeated the %s!", enemy.Name),
		fmt.Sprintf("You gained %d experience and %d gold!", enemy.ExpReward, enemy.GoldReward),
	)
	if leveledUp {
		log = append(log, fmt.Sprintf("Level up! You are now level %d!", gs.Player.Level))
	}

	gs.BattleLog = log
	gs.CurrentEnemy = nil
	gs.Screen = ScreenVictory
	return gs
}

func (r *Reducer) enemyAttack(gs GameState) GameState {
	if gs.CurrentEnemy == nil {
		return gs
	}
	damage := actor.EnemyStrike(*gs.CurrentEnemy, gs.Player)
	gs.Player.TakeDamage(damage)
	gs.BattleLog = appendLog(gs.BattleLog, fmt.Sprintf("The %s attacks you for %d damage!", gs.CurrentEnemy.Name, damage))

	if gs.Player.IsDefeated() {
		// the enemy stays on the field
		gs.Screen = ScreenGameOver
		gs.GameOver = true
		gs.BattleLog = append(gs.BattleLog, "You have been defeated!")
	}
	return gs
}

func (r *Reducer) completeQuest(gs GameState) GameState {
	if gs.CurrentQuest == nil {
		return gs
	}
	done := *gs.CurrentQuest

	// quest rewards never trigger a level-up
	gs.Player.Experience += done.ExpReward
	gs.Player.Gold += done.GoldReward
	if done.ItemReward != nil {
		gs.Inventory = item.Append(gs.Inventory, *done.ItemReward)
	}

	pool := slices.DeleteFunc(slices.Clone(gs.Quests), func(q quest.Quest) bool {
		return q.ID == done.ID
	})
	gs.Quests = append(pool, quest.New(r.src, gs.Player.Level))
	gs.CurrentQuest = nil
	gs.Screen = ScreenMap
	return gs
}

// appendLog returns a new log with lines added. The input log is not
// modified.
func appendLog(log []string, lines ...string) []string {
	out := make([]string, 0, len(log)+len(lines))
	out = append(out, log...)
	return append(out, lines...)
}
