// internal/models/player.go
package models

// PlayerID is a seat at the table. Seats are fixed; which seats are live is
// decided by the match's InGameCount.
type PlayerID int

const (
	PlayerOne PlayerID = iota + 1
	PlayerTwo
	PlayerThree
	PlayerFour
)

// InGameCount is how many seats participate in a match.
type InGameCount int

const (
	TwoPlayers   InGameCount = 2
	ThreePlayers InGameCount = 3
	FourPlayers  InGameCount = 4
)

// Next returns the seat after this one, wrapping back to PlayerOne past the
// last live seat.
func (p PlayerID) Next(count InGameCount) PlayerID {
	n := p + 1
	if int(n) > int(count) {
		return PlayerOne
	}
	return n
}

// PlayerOrder returns the cyclic turn order for a match size.
func PlayerOrder(count InGameCount) []PlayerID {
	order := make([]PlayerID, 0, int(count))
	for i := 1; i <= int(count); i++ {
		order = append(order, PlayerID(i))
	}
	return order
}

// Player is a seat's entry in the game aggregate. Cards are not stored here;
// hands are derived from the deck's location tags.
type Player struct {
	ID PlayerID `json:"id"`
}
