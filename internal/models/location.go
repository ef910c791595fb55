// internal/models/location.go
package models

// PileID names the three shared piles on the table.
type PileID string

const (
	PileDraw         PileID = "draw"
	PileDiscardLeft  PileID = "discard_left"
	PileDiscardRight PileID = "discard_right"
)

// DrawCount is the number of cards a pickup from this pile takes.
func (p PileID) DrawCount() int {
	if p == PileDraw {
		return 2
	}
	return 1
}

// LocationType discriminates the Location union.
type LocationType string

const (
	LocationPile          LocationType = "pile"
	LocationPlayerHand    LocationType = "player_hand"
	LocationPlayerEffects LocationType = "player_effects"
)

// Location is where a card currently sits. Every card has exactly one
// Location at all times. Construct with PileLocation, HandLocation or
// EffectsLocation; values are comparable with ==.
type Location struct {
	Type   LocationType `json:"type"`
	Pile   PileID       `json:"pile,omitempty"`
	Player PlayerID     `json:"player,omitempty"`
}

func PileLocation(p PileID) Location { return Location{Type: LocationPile, Pile: p} }

func HandLocation(p PlayerID) Location { return Location{Type: LocationPlayerHand, Player: p} }

// EffectsLocation marks cards consumed by a played effect. They are visible
// for scoring but no longer part of the hand.
func EffectsLocation(p PlayerID) Location {
	return Location{Type: LocationPlayerEffects, Player: p}
}

// InHandOf reports whether the location is the named player's hand.
func (l Location) InHandOf(p PlayerID) bool {
	return l.Type == LocationPlayerHand && l.Player == p
}
