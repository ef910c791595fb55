// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/auth"
	"github.com/seasaltgame/seasalt/internal/deckcatalog"
	"github.com/seasaltgame/seasalt/internal/handlers"
	"github.com/seasaltgame/seasalt/internal/middleware"
	"github.com/seasaltgame/seasalt/internal/models"
	"github.com/seasaltgame/seasalt/internal/store"
)

func main() {
	auth.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	catalog := deckcatalog.MustLoad()
	gs := handlers.NewGameServer(logger, func() []models.Card { return catalog })

	ctx := context.Background()

	// Persistence and the action queue are optional collaborators; the
	// engine runs fine without them.
	if pg, err := store.ConnectPostgres(ctx); err != nil {
		logger.Warnf("postgres unavailable, snapshots not persisted: %v", err)
	} else {
		defer pg.Close()
		gs.SaveGame = pg.SaveHook(logger)
	}
	if queue, err := store.ConnectRedis(ctx); err != nil {
		logger.Warnf("redis unavailable, action records not queued: %v", err)
	} else {
		gs.PublishAction = queue.PublishHook(logger)
	}

	mux := http.NewServeMux()

	mux.Handle("/tables", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.CreateTableHandler(gs),
	)))
	mux.Handle("/tables/{id}", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.GetTableHandler(gs),
	)))
	mux.Handle("/tables/ws/", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.GameWSHandler(logger, gs),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
