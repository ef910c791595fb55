// internal/models/deck.go
package models

import "fmt"

// PileEmptyError is returned by a pickup against a pile with no cards.
type PileEmptyError struct {
	Pile PileID
}

func (e *PileEmptyError) Error() string {
	return fmt.Sprintf("pile %q is empty", e.Pile)
}

// ErrDrawPileAsDiscardSource flags a discard-pickup invoked with the draw
// pile as its target. This is a programming-contract violation; no legal
// player input can produce it.
var ErrDrawPileAsDiscardSource = fmt.Errorf("attempted to pick up from the draw pile as a discard pile")

// Deck is the single source of truth for every card in a match: an ordered
// set, unique by card ID. Piles and hands are views derived by filtering on
// location; slice order doubles as stack order (first = bottom/oldest, last
// = most recently placed).
type Deck struct {
	Cards []Card `json:"cards"`
}

// Load replaces the deck contents. Every loaded card starts on the draw
// pile; cards with duplicate IDs are dropped, first occurrence wins.
func (d *Deck) Load(cards []Card) {
	d.Cards = make([]Card, 0, len(cards))
	seen := make(map[int]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		c.Location = PileLocation(PileDraw)
		d.Cards = append(d.Cards, c)
	}
}

// Shuffle reorders the deck with the supplied permutation func.
func (d *Deck) Shuffle(shuffle func([]Card) []Card) {
	if shuffle == nil {
		return
	}
	d.Cards = shuffle(d.Cards)
}

func (d *Deck) filter(loc Location) []Card {
	var out []Card
	for _, c := range d.Cards {
		if c.Location == loc {
			out = append(out, c)
		}
	}
	return out
}

// Pile returns the cards currently on the named pile, in deck order.
func (d *Deck) Pile(p PileID) []Card { return d.filter(PileLocation(p)) }

func (d *Deck) DrawPile() []Card { return d.Pile(PileDraw) }

func (d *Deck) LeftDiscardPile() []Card { return d.Pile(PileDiscardLeft) }

func (d *Deck) RightDiscardPile() []Card { return d.Pile(PileDiscardRight) }

// CardsInHand returns the cards in a player's hand.
func (d *Deck) CardsInHand(p PlayerID) []Card { return d.filter(HandLocation(p)) }

// AllCards returns a player's hand plus their played-effect cards, the set
// scoring runs over.
func (d *Deck) AllCards(p PlayerID) []Card {
	out := d.CardsInHand(p)
	return append(out, d.filter(EffectsLocation(p))...)
}

// Card looks a card up by ID.
func (d *Deck) Card(id int) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Update moves a card to a new location. Unknown IDs are ignored; the card
// count never changes.
func (d *Deck) Update(id int, loc Location) {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			d.Cards[i].Location = loc
			return
		}
	}
}

// Draw returns the cards a pickup from the pile takes: up to the pile's
// configured draw count, from the front of the pile view. The emptiness
// check happens once, up front; a short pile yields fewer cards rather than
// an error. Draw does not relocate anything — that is the caller's move.
func (d *Deck) Draw(pile PileID) ([]Card, error) {
	cards := d.Pile(pile)
	if len(cards) == 0 {
		return nil, &PileEmptyError{Pile: pile}
	}
	n := pile.DrawCount()
	if n > len(cards) {
		n = len(cards)
	}
	return cards[:n], nil
}
