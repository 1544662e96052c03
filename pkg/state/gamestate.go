// Package state holds the game-state aggregate and the reducer that moves it
// from one state to the next.
package state

import (
	"slices"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/dice"
	"github.com/jwebster45206/quest-engine/pkg/event"
	"github.com/jwebster45206/quest-engine/pkg/item"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

// GameState is everything there is to know about one game. The reducer
// never modifies a GameState it is given; it always builds a new one.
type GameState struct {
	Screen        Screen           `json:"screen"`
	Player        actor.Player     `json:"player"`
	CurrentEnemy  *actor.Enemy     `json:"current_enemy"`
	Inventory     []item.Item      `json:"inventory"`
	Quests        []quest.Quest    `json:"quests"`
	CurrentQuest  *quest.Quest     `json:"current_quest"`
	BattleLog     []string         `json:"battle_log"`
	GameOver      bool             `json:"game_over"`
	ShopInventory []item.Item      `json:"shop_inventory"`
	CurrentEvent  *event.GameEvent `json:"current_event,omitempty"`
}

// StarterPotion is the health potion every new game begins with.
var StarterPotion = item.Item{
	ID:          "health-potion-1",
	Name:        "Health Potion",
	Type:        item.TypeConsumable,
	Rarity:      item.RarityCommon,
	Effect:      item.EffectHeal,
	Value:       10,
	Price:       20,
	Stats:       item.Stats{HealAmount: 20},
	Description: "Restores 20 health points",
}

// New builds a fresh game: a level 1 player carrying one potion, one quest
// on offer and a stocked shop.
func New(src dice.Source) GameState {
	return GameState{
		Screen:        ScreenStart,
		Player:        actor.NewPlayer(),
		Inventory:     []item.Item{StarterPotion},
		Quests:        []quest.Quest{quest.New(src, 1)},
		BattleLog:     []string{},
		ShopInventory: item.GenerateShopInventory(src, 1),
	}
}

// Clone returns a deep copy of gs.
func (gs GameState) Clone() GameState {
	out := gs
	out.Player.Equipment = cloneEquipment(gs.Player.Equipment)
	out.CurrentEnemy = clonePtr(gs.CurrentEnemy)
	out.Inventory = slices.Clone(gs.Inventory)
	out.ShopInventory = slices.Clone(gs.ShopInventory)
	out.BattleLog = slices.Clone(gs.BattleLog)

	out.Quests = make([]quest.Quest, len(gs.Quests))
	for i, q := range gs.Quests {
		out.Quests[i] = cloneQuest(q)
	}
	if gs.CurrentQuest != nil {
		q := cloneQuest(*gs.CurrentQuest)
		out.CurrentQuest = &q
	}
	if gs.CurrentEvent != nil {
		ev := *gs.CurrentEvent
		ev.Effect.Item = clonePtr(ev.Effect.Item)
		out.CurrentEvent = &ev
	}
	return out
}

func cloneQuest(q quest.Quest) quest.Quest {
	q.ItemReward = clonePtr(q.ItemReward)
	q.EnemyToDefeat = clonePtr(q.EnemyToDefeat)
	return q
}

func cloneEquipment(e actor.Equipment) actor.Equipment {
	return actor.Equipment{
		Weapon:    clonePtr(e.Weapon),
		Armor:     clonePtr(e.Armor),
		Accessory: clonePtr(e.Accessory),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
