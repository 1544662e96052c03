package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jwebster45206/quest-engine/pkg/actor"
	"github.com/jwebster45206/quest-engine/pkg/event"
	"github.com/jwebster45206/quest-engine/pkg/item"
	"github.com/jwebster45206/quest-engine/pkg/quest"
)

var (
	ErrUnknownAction = errors.New("unknown action type")
	ErrInvalidAction = errors.New("invalid action payload")
)

// Envelope is the wire form of an action: {"type": "...", "payload": ...}.
type Envelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EncodeAction serializes a into its envelope form.
func EncodeAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, ErrUnknownAction
	}

	var payload any
	switch a := a.(type) {
	case TriggerEvent:
		payload = a.Event
	case ChangeScreen:
		payload = a.Screen
	case StartBattle:
		if a.Enemy != nil {
			payload = a.Enemy
		}
	case UseItem:
		payload = a.Item
	case EquipItem:
		payload = a.Item
	case UnequipItem:
		payload = a.Slot
	case BuyItem:
		payload = a.Item
	case SellItem:
		payload = a.Item
	case AddToInventory:
		payload = a.Item
	case RemoveFromInventory:
		payload = a.ItemID
	case StartQuest:
		payload = a.Quest
	}

	env := Envelope{Type: a.Type()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", a.Type(), err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

// DecodeAction parses an action envelope. Unknown types fail with
// ErrUnknownAction, malformed envelopes and payloads with ErrInvalidAction.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return env.Action()
}

// Action converts the envelope into a typed action.
func (env Envelope) Action() (Action, error) {
	switch env.Type {
	case ActionResolveEvent:
		return ResolveEvent{}, nil
	case ActionPlayerAttack:
		return PlayerAttack{}, nil
	case ActionEnemyAttack:
		return EnemyAttack{}, nil
	case ActionFleeBattle:
		return FleeBattle{}, nil
	case ActionRefreshShop:
		return RefreshShop{}, nil
	case ActionCompleteQuest:
		return CompleteQuest{}, nil
	case ActionResetGame:
		return ResetGame{}, nil

	case ActionTriggerEvent:
		var ev event.GameEvent
		if err := env.decode(&ev); err != nil {
			return nil, err
		}
		return TriggerEvent{Event: ev}, nil

	case ActionChangeScreen:
		var s Screen
		if err := env.decode(&s); err != nil {
			return nil, err
		}
		if !s.Valid() {
			return nil, fmt.Errorf("%w: unknown screen %q", ErrInvalidAction, s)
		}
		return ChangeScreen{Screen: s}, nil

	case ActionStartBattle:
		if env.empty() {
			return StartBattle{}, nil
		}
		var e actor.Enemy
		if err := env.decode(&e); err != nil {
			return nil, err
		}
		return StartBattle{Enemy: &e}, nil

	case ActionUnequipItem:
		var slot item.Type
		if err := env.decode(&slot); err != nil {
			return nil, err
		}
		if !slot.IsEquipment() {
			return nil, fmt.Errorf("%w: %q is not an equipment slot", ErrInvalidAction, slot)
		}
		return UnequipItem{Slot: slot}, nil

	case ActionRemoveFromInventory:
		var id string
		if err := env.decode(&id); err != nil {
			return nil, err
		}
		return RemoveFromInventory{ItemID: id}, nil

	case ActionStartQuest:
		var q quest.Quest
		if err := env.decode(&q); err != nil {
			return nil, err
		}
		return StartQuest{Quest: q}, nil

	case ActionUseItem, ActionEquipItem, ActionBuyItem, ActionSellItem, ActionAddToInventory:
		var it item.Item
		if err := env.decode(&it); err != nil {
			return nil, err
		}
		switch env.Type {
		case ActionUseItem:
			return UseItem{Item: it}, nil
		case ActionEquipItem:
			return EquipItem{Item: it}, nil
		case ActionBuyItem:
			return BuyItem{Item: it}, nil
		case ActionSellItem:
			return SellItem{Item: it}, nil
		default:
			return AddToInventory{Item: it}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
}

func (env Envelope) empty() bool {
	p := bytes.TrimSpace(env.Payload)
	return len(p) == 0 || bytes.Equal(p, []byte("null"))
}

func (env Envelope) decode(v any) error {
	if env.empty() {
		return fmt.Errorf("%w: %s requires a payload", ErrInvalidAction, env.Type)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidAction, env.Type, err)
	}
	return nil
}
