// internal/store/postgres.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/config"
	"github.com/seasaltgame/seasalt/internal/models"
)

// Postgres persists superseded game snapshots. It implements the engine's
// save hook: one jsonb snapshot per game, plus per-player round totals once
// the match is over.
type Postgres struct {
	Pool *pgxpool.Pool
}

// ConnectPostgres builds a pool from POSTGRES_USER / POSTGRES_PASSWORD /
// PG_HOST / PG_PORT / PG_DATABASE and pings it.
func ConnectPostgres(ctx context.Context) (*Postgres, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		config.Env("POSTGRES_USER", "postgres"),
		config.Env("POSTGRES_PASSWORD", ""),
		config.Env("PG_HOST", "localhost"),
		config.Env("PG_PORT", "5432"),
		config.Env("PG_DATABASE", "seasalt"),
	)

	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{Pool: pool}, nil
}

// SaveGame upserts the snapshot and, for a finished match, the per-player
// totals across completed rounds.
func (p *Postgres) SaveGame(ctx context.Context, g *models.Game) error {
	snapshot, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game snapshot: %w", err)
	}

	finished := g.Phase.Kind == models.PhaseKindEndGame
	err = pgx.BeginTxFunc(ctx, p.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		upsertGame := `
			INSERT INTO games (id, finished, snapshot, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (id) DO UPDATE SET finished = $2, snapshot = $3, updated_at = now()
		`
		if _, e := tx.Exec(ctx, upsertGame, g.ID, finished, snapshot); e != nil {
			return e
		}

		if !finished {
			return nil
		}
		totals := make(map[models.PlayerID]int)
		for _, r := range g.Rounds {
			if r.State != models.RoundComplete {
				continue
			}
			for pid, pts := range r.Points {
				totals[pid] += pts
			}
		}
		for pid, total := range totals {
			q := `
				INSERT INTO game_results (game_id, seat, points)
				VALUES ($1, $2, $3)
				ON CONFLICT (game_id, seat) DO UPDATE SET points = $3
			`
			if _, e := tx.Exec(ctx, q, g.ID, int(pid), total); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx upsert game: %w", err)
	}
	return nil
}

// SaveHook adapts SaveGame to the engine's synchronous fire-and-forget
// contract: errors are logged, never propagated into the mutation.
func (p *Postgres) SaveHook(logger *logrus.Logger) func(*models.Game) {
	return func(g *models.Game) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.SaveGame(ctx, g); err != nil {
			logger.WithFields(logrus.Fields{"game_id": g.ID, "error": err}).Warn("save game failed")
		}
	}
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
