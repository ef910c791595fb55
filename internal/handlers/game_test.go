// internal/handlers/game_test.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seasaltgame/seasalt/internal/auth"
	"github.com/seasaltgame/seasalt/internal/models"
)

func TestMain(m *testing.M) {
	auth.Init()
	os.Exit(m.Run())
}

func testDeck() []models.Card {
	return []models.Card{
		{ID: 1, Kind: models.CollectorKind(models.CollectorShell), Color: models.ColorYellow},
		{ID: 2, Kind: models.CollectorKind(models.CollectorShell), Color: models.ColorLightGreen},
		{ID: 3, Kind: models.DuoKind(models.DuoCrab), Color: models.ColorBlack},
		{ID: 4, Kind: models.DuoKind(models.DuoCrab), Color: models.ColorYellow},
		{ID: 5, Kind: models.DuoKind(models.DuoFish), Color: models.ColorDarkBlue},
		{ID: 6, Kind: models.DuoKind(models.DuoFish), Color: models.ColorLightBlue},
	}
}

func testGameServer() *GameServer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewGameServer(logger, testDeck)
}

func TestCreateTableHandler(t *testing.T) {
	gs := testGameServer()
	h := CreateTableHandler(gs)

	req := httptest.NewRequest(http.MethodPost, "/tables", strings.NewReader(`{"players": 2}`))
	w := httptest.NewRecorder()
	h(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp createTableResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEqual(t, uuid.Nil, resp.TableID)
	require.NotNil(t, resp.Game)
	assert.Equal(t, models.PhaseWaitingForDraw(), resp.Game.Phase)
	assert.Len(t, resp.Game.Players, 2)

	_, ok := gs.Engines.Get(resp.TableID)
	assert.True(t, ok, "table is registered")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
}

func TestCreateTableHandlerRejectsBadInput(t *testing.T) {
	gs := testGameServer()
	h := CreateTableHandler(gs)

	req := httptest.NewRequest(http.MethodPost, "/tables", strings.NewReader(`{"players": 5}`))
	w := httptest.NewRecorder()
	h(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/tables", strings.NewReader(`not json`))
	w = httptest.NewRecorder()
	h(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/tables", nil)
	w = httptest.NewRecorder()
	h(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestGetTableHandler(t *testing.T) {
	gs := testGameServer()
	tableID, _, err := gs.OpenTable(models.TwoPlayers)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/tables/{id}", GetTableHandler(gs))

	req := httptest.NewRequest(http.MethodGet, "/tables/"+tableID.String(), nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var g models.Game
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
	assert.Equal(t, models.PhaseWaitingForDraw(), g.Phase)

	req = httptest.NewRequest(http.MethodGet, "/tables/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/tables/not-a-uuid", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnsureGuestSessionRoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	sessionID, err := EnsureGuestSession(w, req)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// Presenting the minted cookie resolves to the same session.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "session_token="+cookies[0].Value)
	w = httptest.NewRecorder()

	again, err := EnsureGuestSession(w, req)
	require.NoError(t, err)
	assert.Equal(t, sessionID, again)
	assert.Empty(t, w.Result().Cookies(), "no new cookie for a valid session")
}

func TestExtractCookieToken(t *testing.T) {
	assert.Equal(t, "abc", extractCookieToken("session_token=abc", "session_token"))
	assert.Equal(t, "abc", extractCookieToken("other=x; session_token=abc; more=y", "session_token"))
	assert.Equal(t, "", extractCookieToken("other=x", "session_token"))
	assert.Equal(t, "", extractCookieToken("", "session_token"))
}
