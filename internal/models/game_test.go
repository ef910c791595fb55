// internal/models/game_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameOpensWaitingForStart(t *testing.T) {
	g := NewGame(uuid.New(), testCards(8), ThreePlayers)

	assert.Equal(t, PhaseWaitingForStart(), g.Phase)
	assert.Equal(t, PlayerOne, g.CurrentPlayerUp)
	assert.Equal(t, ThreePlayers, g.PlayerCount())
	assert.Len(t, g.Deck.DrawPile(), 8)
	require.Len(t, g.Rounds, 1)
	assert.Equal(t, RoundInProgress, g.Rounds[0].State)
}

func TestPlayerRotationWrapsAround(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Next(TwoPlayers))
	assert.Equal(t, PlayerOne, PlayerTwo.Next(TwoPlayers))
	assert.Equal(t, PlayerOne, PlayerFour.Next(FourPlayers))
	assert.Equal(t, PlayerOne, PlayerThree.Next(ThreePlayers))

	g := NewGame(uuid.New(), testCards(4), TwoPlayers)
	g.AdvancePlayer()
	assert.Equal(t, PlayerTwo, g.CurrentPlayerUp)
	g.AdvancePlayer()
	assert.Equal(t, PlayerOne, g.CurrentPlayerUp)
}

func TestCurrentPlayerHasFourMermaids(t *testing.T) {
	cards := make([]Card, 0, 5)
	for i := 1; i <= 4; i++ {
		cards = append(cards, Card{ID: i, Kind: MermaidKind(), Color: ColorWhite})
	}
	cards = append(cards, Card{ID: 5, Kind: DuoKind(DuoCrab), Color: ColorBlack})

	g := NewGame(uuid.New(), cards, TwoPlayers)
	assert.False(t, g.CurrentPlayerHasFourMermaids())

	for i := 1; i <= 3; i++ {
		g.Deck.Update(i, HandLocation(PlayerOne))
	}
	assert.False(t, g.CurrentPlayerHasFourMermaids())

	g.Deck.Update(4, HandLocation(PlayerOne))
	assert.True(t, g.CurrentPlayerHasFourMermaids())

	// Mermaids in the effects area do not count toward the hand.
	g.Deck.Update(4, EffectsLocation(PlayerOne))
	assert.False(t, g.CurrentPlayerHasFourMermaids())
}

func TestCardsByPlayerCoversEverySeat(t *testing.T) {
	g := NewGame(uuid.New(), testCards(6), ThreePlayers)
	g.Deck.Update(1, HandLocation(PlayerOne))
	g.Deck.Update(2, EffectsLocation(PlayerOne))
	g.Deck.Update(3, HandLocation(PlayerTwo))

	byPlayer := g.CardsByPlayer()
	require.Len(t, byPlayer, 3)
	assert.Len(t, byPlayer[PlayerOne], 2)
	assert.Len(t, byPlayer[PlayerTwo], 1)
	assert.Empty(t, byPlayer[PlayerThree])
}

func TestCloneIsolatesSnapshot(t *testing.T) {
	g := NewGame(uuid.New(), testCards(6), TwoPlayers)
	g.CurrentRound().Points = map[PlayerID]int{PlayerOne: 5}

	snap := g.Clone()
	snap.Deck.Update(1, HandLocation(PlayerTwo))
	snap.CurrentRound().Points[PlayerOne] = 99
	snap.SetPhase(PhaseEndGame())
	snap.Players[PlayerOne].ID = PlayerFour

	c, _ := g.Deck.Card(1)
	assert.Equal(t, PileLocation(PileDraw), c.Location)
	assert.Equal(t, 5, g.CurrentRound().Points[PlayerOne])
	assert.Equal(t, PhaseWaitingForStart(), g.Phase)
	assert.Equal(t, PlayerOne, g.Players[PlayerOne].ID)
}

func TestCloneNilGame(t *testing.T) {
	var g *Game
	assert.Nil(t, g.Clone())
}
