// internal/engine/commands.go
package engine

import (
	"errors"

	"github.com/seasaltgame/seasalt/internal/models"
	"github.com/seasaltgame/seasalt/internal/scoring"
)

// Commands are the only place game state mutates. Each command fails, if it
// can fail at all, before touching anything, so a returned error never
// leaves partial state behind.

func applyUserAction(g *models.Game, a UserAction, shuffle func([]models.Card) []models.Card) error {
	switch a.Kind {
	case ActionDrawPilePickUp:
		return pickUpFromDrawPile(g)

	case ActionPickUpFromLeftDiscard:
		return pickUpFromDiscardPile(g, models.PileDiscardLeft)

	case ActionPickUpFromRightDiscard:
		return pickUpFromDiscardPile(g, models.PileDiscardRight)

	case ActionDiscardToLeftPile:
		discardCard(g, a.CardID, models.PileDiscardLeft)
		return nil

	case ActionDiscardToRightPile:
		discardCard(g, a.CardID, models.PileDiscardRight)
		return nil

	case ActionPlayEffect:
		return playEffect(g, a.CardID, a.SecondCardID)

	case ActionStealCard:
		stealCard(g, a.CardID)
		return nil

	case ActionEndTurn:
		return endTurn(g, a.EndTurn)

	case ActionCompleteRound:
		completeRound(g, shuffle)
		return nil

	default:
		return nil
	}
}

// pickUpFromDrawPile draws the pile's configured count (two) into the
// current player's hand. The emptiness check happens once, at call time; a
// single remaining card is drawn without error.
func pickUpFromDrawPile(g *models.Game) error {
	cards, err := g.Deck.Draw(models.PileDraw)
	if err != nil {
		return err
	}
	for _, c := range cards {
		g.Deck.Update(c.ID, models.HandLocation(g.CurrentPlayerUp))
	}
	g.SetPhase(models.PhaseWaitingForDiscard())
	return nil
}

func pickUpFromDiscardPile(g *models.Game, pile models.PileID) error {
	if pile == models.PileDraw {
		return models.ErrDrawPileAsDiscardSource
	}
	cards, err := g.Deck.Draw(pile)
	if err != nil {
		return err
	}
	for _, c := range cards {
		g.Deck.Update(c.ID, models.HandLocation(g.CurrentPlayerUp))
	}
	g.SetPhase(models.PhaseWaitingForPlay())
	return nil
}

func discardCard(g *models.Game, cardID int, pile models.PileID) {
	g.Deck.Update(cardID, models.PileLocation(pile))
	g.SetPhase(models.PhaseWaitingForPlay())
}

// playEffect relocates both cards to the player's effects area, then fires
// the consequence of the kind pair. Pair legality is the rule layer's job;
// an unrecognized pair here still moves the cards and nothing else.
func playEffect(g *models.Game, firstID, secondID int) error {
	g.Deck.Update(firstID, models.EffectsLocation(g.CurrentPlayerUp))
	g.Deck.Update(secondID, models.EffectsLocation(g.CurrentPlayerUp))

	first, ok := g.Deck.Card(firstID)
	if !ok {
		return nil
	}
	second, ok := g.Deck.Card(secondID)
	if !ok {
		return nil
	}
	if first.Kind.Category != models.CategoryDuo || second.Kind.Category != models.CategoryDuo {
		return nil
	}

	a, b := first.Kind.Duo, second.Kind.Duo
	switch {
	case a == models.DuoCrab && b == models.DuoCrab:
		// Pick one discard pile up; the choice is the player's next action.
		g.SetPhase(models.PhaseResolvingEffect(models.EffectPickUpDiscard))

	case a == models.DuoFish && b == models.DuoFish:
		return playPairOfFish(g)

	case a == models.DuoShip && b == models.DuoShip:
		// The player's turn restarts from the draw step.
		g.SetPhase(models.PhaseWaitingForDraw())

	case (a == models.DuoShark && b == models.DuoSwimmer) ||
		(a == models.DuoSwimmer && b == models.DuoShark):
		g.SetPhase(models.PhaseResolvingEffect(models.EffectStealCard))
	}
	return nil
}

// playPairOfFish grants one bonus card off the top of the draw pile. An
// exhausted draw pile forfeits the bonus rather than failing the effect —
// the pair is already spent by the time we get here.
func playPairOfFish(g *models.Game) error {
	cards, err := g.Deck.Draw(models.PileDraw)
	var empty *models.PileEmptyError
	if errors.As(err, &empty) {
		g.SetPhase(models.PhaseWaitingForPlay())
		return nil
	}
	if err != nil {
		return err
	}
	g.Deck.Update(cards[0].ID, models.HandLocation(g.CurrentPlayerUp))
	g.SetPhase(models.PhaseWaitingForPlay())
	return nil
}

func stealCard(g *models.Game, cardID int) {
	g.Deck.Update(cardID, models.HandLocation(g.CurrentPlayerUp))
	g.SetPhase(models.PhaseWaitingForPlay())
}

func endTurn(g *models.Game, kind EndTurnKind) error {
	switch kind {
	case EndTurnStop:
		endRoundStop(g)
	case EndTurnLastChance:
		endRoundLastChance(g)
	default:
		endTurnNextPlayer(g)
	}
	return nil
}

// endTurnNextPlayer rotates the turn. The mermaid instant win is checked
// before anything else; a completed last-chance lap ends the round instead
// of handing the turn back to the caller.
func endTurnNextPlayer(g *models.Game) {
	if g.CurrentPlayerHasFourMermaids() {
		g.SetPhase(models.PhaseEndGame())
		return
	}

	r := g.CurrentRound()
	next := g.NextPlayerUp()
	if r != nil && r.State == models.RoundEnded &&
		r.EndKind == models.EndRoundLastChance && next == r.Caller {
		// The bet resolves now, as the turn would come back around.
		r.Points = scoring.LastChancePoints(r.Caller, g.CardsByPlayer())
		g.SetPhase(models.PhaseRoundEnded(models.EndRoundLastChance))
		return
	}

	g.AdvancePlayer()
	g.SetPhase(models.PhaseWaitingForDraw())
}

// endRoundStop ends the round on the spot: scores are computed here, at
// call time, and stored on the round.
func endRoundStop(g *models.Game) {
	r := g.CurrentRound()
	r.End(models.EndRoundStop, g.CurrentPlayerUp)
	r.Points = scoring.StopPoints(g.CardsByPlayer())
	g.SetPhase(models.PhaseRoundEnded(models.EndRoundStop))
}

// endRoundLastChance records the bet and gives every other player one more
// turn. Scoring is deferred until the turn would return to the caller.
func endRoundLastChance(g *models.Game) {
	g.CurrentRound().End(models.EndRoundLastChance, g.CurrentPlayerUp)
	g.AdvancePlayer()
	g.SetPhase(models.PhaseWaitingForDraw())
}

// completeRound closes the scored round. With a match winner the game ends;
// otherwise the table is rebuilt for a fresh round and play rotates on.
func completeRound(g *models.Game, shuffle func([]models.Card) []models.Card) {
	g.CurrentRound().State = models.RoundComplete

	if _, ok := scoring.MatchWinner(g.Rounds, g.PlayerCount()); ok {
		g.SetPhase(models.PhaseEndGame())
		return
	}

	g.Rounds = append(g.Rounds, models.NewRound())
	for _, c := range g.Deck.Cards {
		g.Deck.Update(c.ID, models.PileLocation(models.PileDraw))
	}
	g.Deck.Shuffle(shuffle)
	seedDiscardPiles(g)
	g.AdvancePlayer()
	g.SetPhase(models.PhaseWaitingForDraw())
}

// seedDiscardPiles flips the top two draw cards face up, one onto each
// discard pile.
func seedDiscardPiles(g *models.Game) {
	cards, err := g.Deck.Draw(models.PileDraw)
	if err != nil || len(cards) < 2 {
		return
	}
	g.Deck.Update(cards[0].ID, models.PileLocation(models.PileDiscardLeft))
	g.Deck.Update(cards[1].ID, models.PileLocation(models.PileDiscardRight))
}
