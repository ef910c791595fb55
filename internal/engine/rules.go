// internal/engine/rules.go
package engine

import "github.com/seasaltgame/seasalt/internal/models"

// Rules are pure predicates over a game snapshot: no mutation, safe to call
// repeatedly. An action the rules reject is silently ignored by the engine,
// so callers probe legality and execute through the same tags.

func userActionAllowed(g *models.Game, a UserAction) bool {
	if g == nil {
		return false
	}

	switch a.Kind {
	case ActionDrawPilePickUp:
		return g.Phase == models.PhaseWaitingForDraw() && len(g.Deck.DrawPile()) > 0

	case ActionPickUpFromLeftDiscard:
		return canPickUpDiscard(g, models.PileDiscardLeft)

	case ActionPickUpFromRightDiscard:
		return canPickUpDiscard(g, models.PileDiscardRight)

	case ActionDiscardToLeftPile:
		return canDiscardCard(g, a.CardID, models.PileDiscardLeft)

	case ActionDiscardToRightPile:
		return canDiscardCard(g, a.CardID, models.PileDiscardRight)

	case ActionPlayEffect:
		return canPlayEffect(g, a.CardID, a.SecondCardID)

	case ActionStealCard:
		return canStealCard(g, a.CardID)

	case ActionEndTurn:
		return canEndTurn(g, a.EndTurn)

	case ActionCompleteRound:
		return g.Phase.Kind == models.PhaseKindRoundEnded

	default:
		return false
	}
}

func systemActionAllowed(g *models.Game, a SystemAction) bool {
	switch a.Kind {
	case ActionCreateGame:
		if g == nil {
			return true
		}
		// A new game may supersede one that never started or one that is over.
		return g.Phase.Kind == models.PhaseKindWaitingForStart ||
			g.Phase.Kind == models.PhaseKindEndGame

	default:
		return false
	}
}

// canPickUpDiscard gates discard-pile pickups: during the normal draw step
// or while resolving a pick-up-discard effect, and only from a non-empty
// pile.
func canPickUpDiscard(g *models.Game, pile models.PileID) bool {
	if g.Phase != models.PhaseWaitingForDraw() &&
		g.Phase != models.PhaseResolvingEffect(models.EffectPickUpDiscard) {
		return false
	}
	return len(g.Deck.Pile(pile)) > 0
}

// canDiscardTo enforces the discard-pile symmetry rule: a pile accepts a
// discard only if it is empty or the other discard pile is non-empty. The
// draw pile never accepts a discard.
func canDiscardTo(d *models.Deck, pile models.PileID) bool {
	switch pile {
	case models.PileDiscardLeft:
		return len(d.LeftDiscardPile()) == 0 || len(d.RightDiscardPile()) > 0
	case models.PileDiscardRight:
		return len(d.RightDiscardPile()) == 0 || len(d.LeftDiscardPile()) > 0
	default:
		return false
	}
}

func canDiscardCard(g *models.Game, cardID int, pile models.PileID) bool {
	if g.Phase != models.PhaseWaitingForDiscard() {
		return false
	}
	card, ok := g.Deck.Card(cardID)
	if !ok || !card.Location.InHandOf(g.CurrentPlayerUp) {
		return false
	}
	return canDiscardTo(&g.Deck, pile)
}

// validEffectPair reports whether two kinds form a playable effect pair:
// crab/crab, fish/fish, ship/ship, or shark/swimmer in either order.
func validEffectPair(first, second models.Kind) bool {
	if first.Category != models.CategoryDuo || second.Category != models.CategoryDuo {
		return false
	}
	a, b := first.Duo, second.Duo
	switch {
	case a == b:
		return a == models.DuoCrab || a == models.DuoFish || a == models.DuoShip
	case a == models.DuoShark && b == models.DuoSwimmer,
		a == models.DuoSwimmer && b == models.DuoShark:
		return true
	default:
		return false
	}
}

func canPlayEffect(g *models.Game, firstID, secondID int) bool {
	if g.Phase != models.PhaseWaitingForPlay() || firstID == secondID {
		return false
	}
	first, ok := g.Deck.Card(firstID)
	if !ok || !first.Location.InHandOf(g.CurrentPlayerUp) {
		return false
	}
	second, ok := g.Deck.Card(secondID)
	if !ok || !second.Location.InHandOf(g.CurrentPlayerUp) {
		return false
	}
	return validEffectPair(first.Kind, second.Kind)
}

// canStealCard requires an active steal-card effect and a target card in an
// opponent's hand.
func canStealCard(g *models.Game, cardID int) bool {
	if g.Phase != models.PhaseResolvingEffect(models.EffectStealCard) {
		return false
	}
	card, ok := g.Deck.Card(cardID)
	if !ok || card.Location.Type != models.LocationPlayerHand {
		return false
	}
	return card.Location.Player != g.CurrentPlayerUp
}

func canEndTurn(g *models.Game, kind EndTurnKind) bool {
	if g.Phase != models.PhaseWaitingForPlay() {
		return false
	}
	switch kind {
	case EndTurnNextPlayer:
		return true
	case EndTurnStop, EndTurnLastChance:
		r := g.CurrentRound()
		return r != nil && r.State == models.RoundInProgress
	default:
		return false
	}
}
