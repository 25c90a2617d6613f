package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"
	"github.com/nova88bet/telegram-lottery-bot/internal/domain/repository"
)

const (
	postgresConnectAttemptsDefault = 10
	postgresConnectDelayDefault    = 2 * time.Second
)

// postgresGameStore keeps game records in a pgsoft_games table.
type postgresGameStore struct {
	db *sql.DB
}

// NewGameStoreFromEnv returns a Postgres-backed GameRepository when
// DATABASE_URL or POSTGRES_* is configured, otherwise an in-memory fallback.
func NewGameStoreFromEnv(databaseURL string) (repository.GameRepository, error) {
	dsn := strings.TrimSpace(databaseURL)
	if dsn == "" {
		dsn = buildPostgresDSNFromEnv()
	}
	if dsn == "" {
		log.Printf("⚠️ No database configured, game records are in-memory only")
		return NewMemoryGameStore(), nil
	}

	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	store := &postgresGameStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create pgsoft_games table: %w", err)
	}
	return store, nil
}

func buildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	dbName := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || dbName == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	dbName = strings.TrimPrefix(dbName, "/")
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + dbName,
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	attempts := getenvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", postgresConnectAttemptsDefault)
	delaySeconds := getenvInt("POSTGRES_CONNECT_RETRY_SECONDS", int(postgresConnectDelayDefault/time.Second))
	delay := time.Duration(delaySeconds) * time.Second
	if attempts <= 0 {
		attempts = postgresConnectAttemptsDefault
	}
	if delay <= 0 {
		delay = postgresConnectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func getenvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}

func (s *postgresGameStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS pgsoft_games (
			game_id      TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT,
			image_url    TEXT,
			rtp          TEXT,
			detail_url   TEXT,
			last_updated TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *postgresGameStore) Get(ctx context.Context, gameID string) (entity.Game, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT game_id, name, description, image_url, rtp, detail_url, last_updated
		FROM pgsoft_games WHERE game_id = $1`, gameID)

	var game entity.Game
	err := row.Scan(&game.GameID, &game.Name, &game.Description, &game.ImageURL,
		&game.RTP, &game.DetailURL, &game.LastUpdated)
	if err == sql.ErrNoRows {
		return entity.Game{}, false, nil
	}
	if err != nil {
		return entity.Game{}, false, err
	}
	return game, true, nil
}

func (s *postgresGameStore) Upsert(ctx context.Context, game entity.Game) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pgsoft_games (game_id, name, description, image_url, rtp, detail_url, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			rtp = EXCLUDED.rtp,
			detail_url = EXCLUDED.detail_url,
			last_updated = EXCLUDED.last_updated`,
		game.GameID, game.Name, game.Description, game.ImageURL,
		game.RTP, game.DetailURL, game.LastUpdated)
	return err
}

func (s *postgresGameStore) List(ctx context.Context) ([]entity.Game, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, name, description, image_url, rtp, detail_url, last_updated
		FROM pgsoft_games ORDER BY game_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []entity.Game
	for rows.Next() {
		var game entity.Game
		if err := rows.Scan(&game.GameID, &game.Name, &game.Description, &game.ImageURL,
			&game.RTP, &game.DetailURL, &game.LastUpdated); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
