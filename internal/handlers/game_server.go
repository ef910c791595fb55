// internal/handlers/game_server.go
package handlers

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/engine"
	"github.com/seasaltgame/seasalt/internal/models"
	"github.com/seasaltgame/seasalt/internal/store"
)

// GameServer owns the registry of live engines and the hooks new engines
// are wired with: the card catalog, the persistence hook and the action
// queue publisher. Nil hooks degrade to the engine's defaults.
type GameServer struct {
	Engines *store.EngineStore
	Logger  *logrus.Logger

	Deck          func() []models.Card
	SaveGame      func(*models.Game)
	PublishAction func(engine.ActionRecord)
}

func NewGameServer(logger *logrus.Logger, deck func() []models.Card) *GameServer {
	return &GameServer{
		Engines: store.NewEngineStore(),
		Logger:  logger,
		Deck:    deck,
	}
}

// OpenTable creates an engine, starts its first match and registers it
// under a fresh table id.
func (gs *GameServer) OpenTable(players models.InGameCount) (uuid.UUID, *engine.Engine, error) {
	e := engine.New(engine.Deps{
		Deck:          gs.Deck,
		SaveGame:      gs.SaveGame,
		PublishAction: gs.PublishAction,
		Logger:        gs.Logger,
	})
	if _, err := e.PerformSystem(engine.CreateGame(players)); err != nil {
		return uuid.Nil, nil, err
	}

	tableID := uuid.New()
	gs.Engines.Add(tableID, e)
	gs.Logger.WithFields(logrus.Fields{
		"table_id": tableID,
		"players":  int(players),
	}).Info("table opened")
	return tableID, e, nil
}
