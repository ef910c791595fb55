// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/engine"
	"github.com/seasaltgame/seasalt/internal/middleware"
	"github.com/seasaltgame/seasalt/internal/models"
)

// GameMessage is an incoming client frame: an action tag plus its card
// arguments. Actions carry no player identity — the engine tracks whose
// turn it is.
type GameMessage struct {
	Type         string `json:"type"`
	EndTurn      string `json:"end_turn,omitempty"`
	CardID       int    `json:"card_id,omitempty"`
	SecondCardID int    `json:"second_card_id,omitempty"`
	Players      int    `json:"players,omitempty"`
}

type stateFrame struct {
	Type string       `json:"type"`
	Game *models.Game `json:"game"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// GameWSHandler upgrades the HTTP connection to WebSocket for a table at
// /tables/ws/{table_id}, authenticates the session, forwards action frames
// into the engine and streams snapshot events back out.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/tables/ws/"), "/")
		if len(pathParts) < 1 || pathParts[0] == "" {
			http.Error(w, "Missing table_id in path (/tables/ws/{table_id})", http.StatusBadRequest)
			return
		}
		tableID, err := uuid.Parse(pathParts[0])
		if err != nil {
			http.Error(w, "Invalid table_id format", http.StatusBadRequest)
			return
		}

		e, ok := gs.Engines.Get(tableID)
		if !ok {
			http.Error(w, "Table not found", http.StatusNotFound)
			return
		}

		sessionID, err := EnsureGuestSession(w, r)
		if err != nil {
			http.Error(w, "Authentication failed", http.StatusUnauthorized)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for table %s: %v", tableID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			c.Close(StatusBadSubprotocol, "Client must use the 'game' subprotocol.")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)
		logger.WithFields(logrus.Fields{
			"table_id": tableID,
			"session":  sessionID,
		}).Info("game ws session started")

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Stream engine events out. The subscription channel is best-effort;
		// a stalled client drops frames rather than stalling the engine.
		subID, events := e.Subscribe()
		defer e.Unsubscribe(subID)
		go func() {
			for ev := range events {
				if err := writeJSON(ctx, c, stateFrame{Type: "game_state", Game: ev.Game}); err != nil {
					cancel()
					return
				}
			}
		}()

		// Send the current snapshot so a late joiner is in sync.
		if err := writeJSON(ctx, c, stateFrame{Type: "game_state", Game: e.Game()}); err != nil {
			return
		}

		readLoop(ctx, c, e, logger)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
		c.Close(websocket.StatusNormalClosure, "")
	}
}

func readLoop(ctx context.Context, c *websocket.Conn, e *engine.Engine, logger *logrus.Logger) {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			writeJSON(ctx, c, errorFrame{Type: "error", Error: "invalid message"})
			continue
		}
		if err := dispatch(e, msg); err != nil {
			writeJSON(ctx, c, errorFrame{Type: "error", Error: err.Error()})
		}
	}
}

// dispatch maps a client frame to an engine action. Rule rejections are
// deliberately silent, matching the engine's contract; only command
// failures come back as error frames.
func dispatch(e *engine.Engine, msg GameMessage) error {
	if msg.Type == string(engine.ActionCreateGame) {
		players := models.InGameCount(msg.Players)
		_, err := e.PerformSystem(engine.CreateGame(players))
		return err
	}

	action := engine.UserAction{
		Kind:         engine.UserActionKind(msg.Type),
		EndTurn:      engine.EndTurnKind(msg.EndTurn),
		CardID:       msg.CardID,
		SecondCardID: msg.SecondCardID,
	}
	_, err := e.PerformUser(action)

	var pileEmpty *models.PileEmptyError
	if errors.As(err, &pileEmpty) {
		return pileEmpty
	}
	return err
}

func writeJSON(ctx context.Context, c *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}
