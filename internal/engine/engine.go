// internal/engine/engine.go
package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/models"
)

// ActionRecord describes one applied action, for the async archive queue.
type ActionRecord struct {
	GameID      uuid.UUID `json:"game_id"`
	ActionIndex int       `json:"action_index"`
	ActionTag   string    `json:"action_tag"`
	Timestamp   int64     `json:"timestamp"`
}

// Deps are the engine's external collaborators. Only Deck is required; the
// rest default to live implementations (random ids, rand shuffle, no-op
// persistence).
type Deps struct {
	// Deck returns the ordered playable card set from the static catalog.
	Deck func() []models.Card

	// NewGameID produces a fresh unique match id on create-game.
	NewGameID func() uuid.UUID

	// Shuffle returns a permutation of the card list. Identity is fine for
	// deterministic tests.
	Shuffle func([]models.Card) []models.Card

	// SaveGame is invoked with the outgoing game snapshot when a new game
	// supersedes it. Fire-and-forget from the engine's viewpoint.
	SaveGame func(*models.Game)

	// PublishAction, when set, receives a record for every applied action.
	PublishAction func(ActionRecord)

	Logger *logrus.Logger
}

// Engine binds the injected collaborators to one live game and performs
// validate-then-execute dispatch for incoming action tags. All mutation is
// serialized behind a mutex: at most one in-flight action per game.
type Engine struct {
	mu          sync.Mutex
	deps        Deps
	game        *models.Game
	actionIndex int

	broadcaster *Broadcaster
	log         *logrus.Logger
}

// New constructs an engine with no live game; a create-game system action
// starts the first match.
func New(deps Deps) *Engine {
	if deps.Deck == nil {
		deps.Deck = func() []models.Card { return nil }
	}
	if deps.NewGameID == nil {
		deps.NewGameID = uuid.New
	}
	if deps.Shuffle == nil {
		deps.Shuffle = func(cards []models.Card) []models.Card {
			out := append([]models.Card(nil), cards...)
			rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
			return out
		}
	}
	if deps.SaveGame == nil {
		deps.SaveGame = func(*models.Game) {}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.New()
	}
	return &Engine{
		deps:        deps,
		broadcaster: NewBroadcaster(),
		log:         deps.Logger,
	}
}

// Game returns a snapshot of the live game, or nil before the first
// create-game.
func (e *Engine) Game() *models.Game {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Clone()
}

// Subscribe attaches an event listener; see Broadcaster.
func (e *Engine) Subscribe() (int, <-chan Event) { return e.broadcaster.Subscribe() }

// Unsubscribe detaches an event listener.
func (e *Engine) Unsubscribe(id int) { e.broadcaster.Unsubscribe(id) }

// UserActionIsPlayable probes whether a user action would pass validation
// right now, without executing it.
func (e *Engine) UserActionIsPlayable(a UserAction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return userActionAllowed(e.game, a)
}

// SystemActionIsPlayable probes a system action's legality.
func (e *Engine) SystemActionIsPlayable(a SystemAction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return systemActionAllowed(e.game, a)
}

// PerformUser validates and executes a user action. An action the rules
// reject is ignored, not an error: applied is false and err is nil. Command
// failures (an empty pile at draw time) surface unchanged.
func (e *Engine) PerformUser(a UserAction) (applied bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !userActionAllowed(e.game, a) {
		e.log.WithFields(logrus.Fields{"action": a.Tag()}).Debug("action rejected by rule")
		return false, nil
	}
	if err := applyUserAction(e.game, a, e.deps.Shuffle); err != nil {
		e.log.WithFields(logrus.Fields{"action": a.Tag(), "error": err}).Warn("command failed")
		return false, err
	}
	e.recordApplied(a.Tag())
	return true, nil
}

// PerformSystem validates and executes a system action, with the same
// silent-ignore contract as PerformUser.
func (e *Engine) PerformSystem(a SystemAction) (applied bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !systemActionAllowed(e.game, a) {
		e.log.WithFields(logrus.Fields{"action": a.Tag()}).Debug("action rejected by rule")
		return false, nil
	}

	switch a.Kind {
	case ActionCreateGame:
		err = e.createGame(a.Players)
	}
	if err != nil {
		return false, err
	}
	e.recordApplied(a.Tag())
	return true, nil
}

// createGame persists the outgoing game, then builds a fresh one from a
// newly shuffled catalog: discard piles seeded with the top two cards, first
// player up, phase open for the draw step.
func (e *Engine) createGame(players models.InGameCount) error {
	if players == 0 {
		players = models.TwoPlayers
	}
	if e.game != nil {
		e.deps.SaveGame(e.game.Clone())
	}

	g := models.NewGame(e.deps.NewGameID(), e.deps.Shuffle(e.deps.Deck()), players)
	seedDiscardPiles(g)
	g.SetPhase(models.PhaseWaitingForDraw())

	e.game = g
	e.actionIndex = 0
	e.log.WithFields(logrus.Fields{
		"game_id": g.ID,
		"players": int(players),
		"cards":   len(g.Deck.Cards),
	}).Info("created game")
	return nil
}

// recordApplied emits the post-action snapshot to listeners and, when a
// publisher is wired, queues an action record. Both are fire-and-forget.
func (e *Engine) recordApplied(tag string) {
	e.actionIndex++
	if e.deps.PublishAction != nil && e.game != nil {
		e.deps.PublishAction(ActionRecord{
			GameID:      e.game.ID,
			ActionIndex: e.actionIndex,
			ActionTag:   tag,
			Timestamp:   time.Now().UnixMilli(),
		})
	}
	e.broadcaster.Publish(Event{Game: e.game.Clone()})
}
