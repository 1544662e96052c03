package state

import (
	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/event"
	"github.com/jwebster45206/quest-engine/pkg/item"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

type ActionType string

const (
	ActionTriggerEvent        ActionType = "TRIGGER_EVENT"
	ActionResolveEvent        ActionType = "RESOLVE_EVENT"
	ActionChangeScreen        ActionType = "CHANGE_SCREEN"
	ActionStartBattle         ActionType = "START_BATTLE"
	ActionPlayerAttack        ActionType = "PLAYER_ATTACK"
	ActionEnemyAttack         ActionType = "ENEMY_ATTACK"
	ActionFleeBattle          ActionType = "FLEE_BATTLE"
	ActionUseItem             ActionType = "USE_ITEM"
	ActionEquipItem           ActionType = "EQUIP_ITEM"
	ActionUnequipItem         ActionType = "UNEQUIP_ITEM"
	ActionBuyItem             ActionType = "BUY_ITEM"
	ActionSellItem            ActionType = "SELL_ITEM"
	ActionRefreshShop         ActionType = "REFRESH_SHOP"
	ActionAddToInventory      ActionType = "ADD_TO_INVENTORY"
	ActionRemoveFromInventory ActionType = "REMOVE_FROM_INVENTORY"
	ActionStartQuest          ActionType = "START_QUEST"
	ActionCompleteQuest       ActionType = "COMPLETE_QUEST"
	ActionResetGame           ActionType = "RESET_GAME"
)

// Action is one of the fixed set of things that can happen to a game.
// Only the types in this package implement it.
type Action interface {
	Type() ActionType
	action()
}

type (
	TriggerEvent struct{ Event event.GameEvent }
	ResolveEvent struct{}
	ChangeScreen struct{ Screen Screen }
	// StartBattle starts a fight with Enemy, or with a freshly generated
	// enemy when Enemy is nil.
	StartBattle         struct{ Enemy *actor.Enemy }
	PlayerAttack        struct{}
	EnemyAttack         struct{}
	FleeBattle          struct{}
	UseItem             struct{ Item item.Item }
	EquipItem           struct{ Item item.Item }
	UnequipItem         struct{ Slot item.Type }
	BuyItem             struct{ Item item.Item }
	SellItem            struct{ Item item.Item }
	RefreshShop         struct{}
	AddToInventory      struct{ Item item.Item }
	RemoveFromInventory struct{ ItemID string }
	StartQuest          struct{ Quest quest.Quest }
	CompleteQuest       struct{}
	ResetGame           struct{}
)

func (TriggerEvent) Type() ActionType        { return ActionTriggerEvent }
func (ResolveEvent) Type() ActionType        { return ActionResolveEvent }
func (ChangeScreen) Type() ActionType        { return ActionChangeScreen }
func (StartBattle) Type() ActionType         { return ActionStartBattle }
func (PlayerAttack) Type() ActionType        { return ActionPlayerAttack }
func (EnemyAttack) Type() ActionType         { return ActionEnemyAttack }
func (FleeBattle) Type() ActionType          { return ActionFleeBattle }
func (UseItem) Type() ActionType             { return ActionUseItem }
func (EquipItem) Type() ActionType           { return ActionEquipItem }
func (UnequipItem) Type() ActionType         { return ActionUnequipItem }
func (BuyItem) Type() ActionType             { return ActionBuyItem }
func (SellItem) Type() ActionType            { return ActionSellItem }
func (RefreshShop) Type() ActionType         { return ActionRefreshShop }
func (AddToInventory) Type() ActionType      { return ActionAddToInventory }
func (RemoveFromInventory) Type() ActionType { return ActionRemoveFromInventory }
func (StartQuest) Type() ActionType          { return ActionStartQuest }
func (CompleteQuest) Type() ActionType       { return ActionCompleteQuest }
func (ResetGame) Type() ActionType           { return ActionResetGame }

func (TriggerEvent) action()        {}
func (ResolveEvent) action()        {}
func (ChangeScreen) action()        {}
func (StartBattle) action()         {}
func (PlayerAttack) action()        {}
func (EnemyAttack) action()         {}
func (FleeBattle) action()          {}
func (UseItem) action()             {}
func (EquipItem) action()           {}
func (UnequipItem) action()         {}
func (BuyItem) action()             {}
func (SellItem) action()            {}
func (RefreshShop) action()         {}
func (AddToInventory) action()      {}
func (RemoveFromInventory) action() {}
func (StartQuest) action()          {}
func (CompleteQuest) action()       {}
func (ResetGame) action()           {}
