// internal/models/phase.go
package models

// EffectKind is an effect that needs further player input to resolve.
type EffectKind string

const (
	EffectPickUpDiscard EffectKind = "pick_up_discard"
	EffectStealCard     EffectKind = "steal_card"
)

// EndRoundKind distinguishes how a round was called to an end.
type EndRoundKind string

const (
	EndRoundStop       EndRoundKind = "stop"
	EndRoundLastChance EndRoundKind = "last_chance"
)

// PhaseKind discriminates the Phase union.
type PhaseKind string

const (
	PhaseKindWaitingForStart   PhaseKind = "waiting_for_start"
	PhaseKindWaitingForDraw    PhaseKind = "waiting_for_draw"
	PhaseKindWaitingForDiscard PhaseKind = "waiting_for_discard"
	PhaseKindWaitingForPlay    PhaseKind = "waiting_for_play"
	PhaseKindResolvingEffect   PhaseKind = "resolving_effect"
	PhaseKindRoundEnded        PhaseKind = "round_ended"
	PhaseKindEndGame           PhaseKind = "end_game"
)

// Phase is the match's control state and the sole gate on which actions are
// legal. Exactly one Phase holds at a time; values are comparable with ==.
type Phase struct {
	Kind    PhaseKind    `json:"kind"`
	Effect  EffectKind   `json:"effect,omitempty"`   // set when Kind == PhaseKindResolvingEffect
	EndKind EndRoundKind `json:"end_kind,omitempty"` // set when Kind == PhaseKindRoundEnded
}

func PhaseWaitingForStart() Phase   { return Phase{Kind: PhaseKindWaitingForStart} }
func PhaseWaitingForDraw() Phase    { return Phase{Kind: PhaseKindWaitingForDraw} }
func PhaseWaitingForDiscard() Phase { return Phase{Kind: PhaseKindWaitingForDiscard} }
func PhaseWaitingForPlay() Phase    { return Phase{Kind: PhaseKindWaitingForPlay} }
func PhaseEndGame() Phase           { return Phase{Kind: PhaseKindEndGame} }

func PhaseResolvingEffect(e EffectKind) Phase {
	return Phase{Kind: PhaseKindResolvingEffect, Effect: e}
}

func PhaseRoundEnded(k EndRoundKind) Phase {
	return Phase{Kind: PhaseKindRoundEnded, EndKind: k}
}
