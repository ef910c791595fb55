// internal/models/round.go
package models

// RoundState is the lifecycle of a single scoring epoch.
type RoundState string

const (
	RoundInProgress RoundState = "in_progress"
	RoundEnded      RoundState = "ended"
	RoundComplete   RoundState = "complete"
)

// Round is one scoring epoch. EndKind and Caller are meaningful once the
// round has been ended; Points is populated by the round's scoring pass.
type Round struct {
	State   RoundState       `json:"state"`
	EndKind EndRoundKind     `json:"end_kind,omitempty"`
	Caller  PlayerID         `json:"caller,omitempty"`
	Points  map[PlayerID]int `json:"points,omitempty"`
}

// NewRound returns a fresh in-progress round.
func NewRound() *Round {
	return &Round{State: RoundInProgress}
}

// End records why and by whom the round was called.
func (r *Round) End(kind EndRoundKind, caller PlayerID) {
	r.State = RoundEnded
	r.EndKind = kind
	r.Caller = caller
}
