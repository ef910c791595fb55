// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/seasaltgame/seasalt/internal/models"
)

type createTableRequest struct {
	Players int `json:"players"`
}

type createTableResponse struct {
	TableID uuid.UUID    `json:"table_id"`
	Game    *models.Game `json:"game"`
}

// CreateTableHandler opens a new table: POST /tables {"players": 2|3|4}.
func CreateTableHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req createTableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Players < 2 || req.Players > 4 {
			http.Error(w, "players must be 2, 3 or 4", http.StatusBadRequest)
			return
		}
		if _, err := EnsureGuestSession(w, r); err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}

		tableID, e, err := gs.OpenTable(models.InGameCount(req.Players))
		if err != nil {
			gs.Logger.Warnf("open table failed: %v", err)
			http.Error(w, "failed to open table", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(createTableResponse{TableID: tableID, Game: e.Game()})
	}
}

// GetTableHandler returns the current game snapshot: GET /tables/{id}.
func GetTableHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.PathValue("id")
		tableID, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "invalid table id", http.StatusBadRequest)
			return
		}
		e, ok := gs.Engines.Get(tableID)
		if !ok {
			http.Error(w, "table not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(e.Game())
	}
}
