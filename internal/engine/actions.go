// internal/engine/actions.go
package engine

import (
	"fmt"

	"github.com/seasaltgame/seasalt/internal/models"
)

// UserActionKind tags the player-facing actions. Each kind resolves to one
// validation rule and one command; the engine always validates before it
// executes.
type UserActionKind string

const (
	ActionDrawPilePickUp         UserActionKind = "draw_pile_pickup"
	ActionPickUpFromLeftDiscard  UserActionKind = "pickup_from_left_discard"
	ActionPickUpFromRightDiscard UserActionKind = "pickup_from_right_discard"
	ActionDiscardToLeftPile      UserActionKind = "discard_to_left_pile"
	ActionDiscardToRightPile     UserActionKind = "discard_to_right_pile"
	ActionPlayEffect             UserActionKind = "play_effect"
	ActionStealCard              UserActionKind = "steal_card"
	ActionEndTurn                UserActionKind = "end_turn"
	ActionCompleteRound          UserActionKind = "complete_round"
)

// EndTurnKind selects the end-turn variant.
type EndTurnKind string

const (
	EndTurnNextPlayer EndTurnKind = "next_player"
	EndTurnStop       EndTurnKind = "stop"
	EndTurnLastChance EndTurnKind = "last_chance"
)

// UserAction is a player action tag with its arguments. CardID and
// SecondCardID are meaningful only for the card-addressed kinds.
type UserAction struct {
	Kind         UserActionKind `json:"kind"`
	EndTurn      EndTurnKind    `json:"end_turn,omitempty"`
	CardID       int            `json:"card_id,omitempty"`
	SecondCardID int            `json:"second_card_id,omitempty"`
}

func DrawPilePickUp() UserAction { return UserAction{Kind: ActionDrawPilePickUp} }

func PickUpFromLeftDiscard() UserAction { return UserAction{Kind: ActionPickUpFromLeftDiscard} }

func PickUpFromRightDiscard() UserAction { return UserAction{Kind: ActionPickUpFromRightDiscard} }

func DiscardToLeftPile(cardID int) UserAction {
	return UserAction{Kind: ActionDiscardToLeftPile, CardID: cardID}
}

func DiscardToRightPile(cardID int) UserAction {
	return UserAction{Kind: ActionDiscardToRightPile, CardID: cardID}
}

func PlayEffectWithCards(first, second int) UserAction {
	return UserAction{Kind: ActionPlayEffect, CardID: first, SecondCardID: second}
}

func StealCard(cardID int) UserAction {
	return UserAction{Kind: ActionStealCard, CardID: cardID}
}

func EndTurn(kind EndTurnKind) UserAction {
	return UserAction{Kind: ActionEndTurn, EndTurn: kind}
}

func CompleteRound() UserAction { return UserAction{Kind: ActionCompleteRound} }

// Tag is the action's log/record identity.
func (a UserAction) Tag() string {
	if a.Kind == ActionEndTurn {
		return fmt.Sprintf("%s:%s", a.Kind, a.EndTurn)
	}
	return string(a.Kind)
}

// SystemActionKind tags the system actions, a namespace distinct from user
// actions.
type SystemActionKind string

const ActionCreateGame SystemActionKind = "create_game"

// SystemAction is an engine-level action tag.
type SystemAction struct {
	Kind    SystemActionKind   `json:"kind"`
	Players models.InGameCount `json:"players,omitempty"`
}

func CreateGame(players models.InGameCount) SystemAction {
	return SystemAction{Kind: ActionCreateGame, Players: players}
}

// Tag is the action's log/record identity.
func (a SystemAction) Tag() string { return string(a.Kind) }
