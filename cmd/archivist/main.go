// cmd/archivist/main.go is an asynchronous archivist service that pops
// applied-action records from the Redis queue and persists them to Postgres
// in batches.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/seasaltgame/seasalt/internal/config"
	"github.com/seasaltgame/seasalt/internal/engine"
	"github.com/seasaltgame/seasalt/internal/store"
)

// Archivist drains the action queue into the game_actions table. Records
// are batched: a batch flushes when it is full or when the flush delay
// elapses, whichever comes first.
type Archivist struct {
	queue      *store.Queue
	db         *store.Postgres
	batchSize  int
	flushDelay time.Duration
	log        *logrus.Logger

	batch []engine.ActionRecord
}

func NewArchivist(queue *store.Queue, db *store.Postgres, log *logrus.Logger) *Archivist {
	return &Archivist{
		queue:      queue,
		db:         db,
		batchSize:  config.EnvInt("ARCHIVIST_BATCH_SIZE", 20),
		flushDelay: config.EnvDuration("ARCHIVIST_FLUSH_DELAY", 500*time.Millisecond),
		log:        log,
	}
}

// Run pops records until the context is canceled, flushing the final
// partial batch on the way out.
func (a *Archivist) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.flush(context.Background())
			return
		default:
		}

		rec, err := a.queue.Pop(ctx, a.flushDelay)
		if err != nil {
			if ctx.Err() != nil {
				a.flush(context.Background())
				return
			}
			a.log.Warnf("queue pop failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if rec == nil {
			// Timed out waiting; flush whatever accumulated.
			a.flush(ctx)
			continue
		}

		a.batch = append(a.batch, *rec)
		if len(a.batch) >= a.batchSize {
			a.flush(ctx)
		}
	}
}

func (a *Archivist) flush(ctx context.Context) {
	if len(a.batch) == 0 {
		return
	}
	batch := a.batch
	a.batch = nil

	err := pgx.BeginTxFunc(ctx, a.db.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO game_actions (game_id, action_index, action_tag, occurred_at)
			VALUES ($1, $2, $3, to_timestamp($4 / 1000.0))
			ON CONFLICT (game_id, action_index) DO NOTHING
		`
		for _, rec := range batch {
			if _, e := tx.Exec(ctx, q, rec.GameID, rec.ActionIndex, rec.ActionTag, rec.Timestamp); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		a.log.Warnf("flush of %d action records failed: %v", len(batch), err)
		return
	}
	a.log.Debugf("flushed %d action records", len(batch))
}

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue, err := store.ConnectRedis(ctx)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	db, err := store.ConnectPostgres(ctx)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	log.Infof("archivist draining queue %q", queue.Name)
	NewArchivist(queue, db, log).Run(ctx)
}
