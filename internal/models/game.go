// internal/models/game.go
package models

import "github.com/google/uuid"

// Game is the aggregate root for one match: the deck, the seats, the control
// phase, whose turn it is, and the round history. It is mutated exclusively
// through validated engine actions.
type Game struct {
	ID              uuid.UUID            `json:"id"`
	Players         map[PlayerID]*Player `json:"players"`
	Deck            Deck                 `json:"deck"`
	Phase           Phase                `json:"phase"`
	CurrentPlayerUp PlayerID             `json:"current_player_up"`
	Rounds          []*Round             `json:"rounds"`
}

// NewGame builds a match for the requested seat count. Cards are loaded in
// the given order (shuffle before calling for a live match) and all start on
// the draw pile. The game opens in WaitingForStart with one in-progress
// round; the create-game command seeds the table and opens play.
func NewGame(id uuid.UUID, cards []Card, count InGameCount) *Game {
	players := make(map[PlayerID]*Player, int(count))
	for _, pid := range PlayerOrder(count) {
		players[pid] = &Player{ID: pid}
	}
	g := &Game{
		ID:              id,
		Players:         players,
		Phase:           PhaseWaitingForStart(),
		CurrentPlayerUp: PlayerOne,
		Rounds:          []*Round{NewRound()},
	}
	g.Deck.Load(cards)
	return g
}

// PlayerCount is the number of live seats.
func (g *Game) PlayerCount() InGameCount { return InGameCount(len(g.Players)) }

// CurrentRound returns the last (current) round.
func (g *Game) CurrentRound() *Round {
	if len(g.Rounds) == 0 {
		return nil
	}
	return g.Rounds[len(g.Rounds)-1]
}

// SetPhase transitions the control phase.
func (g *Game) SetPhase(p Phase) { g.Phase = p }

// NextPlayerUp returns the seat after the current one.
func (g *Game) NextPlayerUp() PlayerID {
	return g.CurrentPlayerUp.Next(g.PlayerCount())
}

// AdvancePlayer rotates the turn to the next seat.
func (g *Game) AdvancePlayer() { g.CurrentPlayerUp = g.NextPlayerUp() }

// CurrentPlayerHasFourMermaids reports the instant-win condition: all four
// mermaid cards in the current player's hand.
func (g *Game) CurrentPlayerHasFourMermaids() bool {
	n := 0
	for _, c := range g.Deck.CardsInHand(g.CurrentPlayerUp) {
		if c.Kind.IsMermaid() {
			n++
		}
	}
	return n == 4
}

// CardsByPlayer snapshots every live seat's scorable cards (hand plus played
// effects).
func (g *Game) CardsByPlayer() map[PlayerID][]Card {
	out := make(map[PlayerID][]Card, len(g.Players))
	for pid := range g.Players {
		out[pid] = g.Deck.AllCards(pid)
	}
	return out
}

// Clone deep-copies the aggregate so snapshots handed to listeners and
// persistence hooks cannot race live mutations.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Players = make(map[PlayerID]*Player, len(g.Players))
	for pid, p := range g.Players {
		cp := *p
		out.Players[pid] = &cp
	}
	out.Deck.Cards = append([]Card(nil), g.Deck.Cards...)
	out.Rounds = make([]*Round, len(g.Rounds))
	for i, r := range g.Rounds {
		cr := *r
		if r.Points != nil {
			cr.Points = make(map[PlayerID]int, len(r.Points))
			for pid, pts := range r.Points {
				cr.Points[pid] = pts
			}
		}
		out.Rounds[i] = &cr
	}
	return &out
}
