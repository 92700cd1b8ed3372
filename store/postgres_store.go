package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/priyansh563/studybot/internal/premium"
	"github.com/priyansh563/studybot/types"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

var ErrUserNotFound = errors.New("user not found")

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		dsn = buildPostgresDSNFromEnv()
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{pool: pool}
	if err := s.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func buildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	if port == "" {
		port = "5432"
	}
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	if db == "" {
		db = "studybot"
	}
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	if user == "" {
		user = "studybot"
	}
	pass := os.Getenv("POSTGRES_PASSWORD")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", urlEscape(user), urlEscape(pass), host, port, db)
}

func urlEscape(s string) string {
	r := strings.NewReplacer(
		"%", "%25",
		":", "%3A",
		"/", "%2F",
		"@", "%40",
		"?", "%3F",
		"#", "%23",
		"[", "%5B",
		"]", "%5D",
	)
	return r.Replace(s)
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDB(*s.pool.Config().ConnConfig)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

func (s *PostgresStore) CreateUser(tgID int64, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.pool.Exec(ctx, `
INSERT INTO users (tg_id, name)
VALUES ($1, $2)
ON CONFLICT (tg_id) DO NOTHING;
`, tgID, strings.TrimSpace(name))
	return err
}

func (s *PostgresStore) GetUser(tgID int64) (*types.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var u types.User
	err := s.pool.QueryRow(ctx, `
SELECT id, tg_id, name, is_premium, premium_expiry, joined_at
FROM users
WHERE tg_id = $1
`, tgID).Scan(&u.ID, &u.TelegramID, &u.Name, &u.IsPremium, &u.PremiumExpiry, &u.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CheckPremium derives the current premium state and writes the flag back
// when a stored expiry disagrees with it. The write is guarded on the
// expiry value that was observed, so it never clobbers a concurrent grant.
func (s *PostgresStore) CheckPremium(tgID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var flag bool
	var expiry *time.Time
	err := s.pool.QueryRow(ctx, `
SELECT is_premium, premium_expiry
FROM users
WHERE tg_id = $1
`, tgID).Scan(&flag, &expiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	active := premium.Active(time.Now().UTC(), flag, expiry)
	if expiry != nil && active != flag {
		_, err = s.pool.Exec(ctx, `
UPDATE users
SET is_premium = $2
WHERE tg_id = $1 AND premium_expiry IS NOT DISTINCT FROM $3
`, tgID, active, expiry)
		if err != nil {
			return false, err
		}
	}
	return active, nil
}

// GrantPremium extends the subscription inside a row-locking transaction:
// concurrent grants for the same user serialize, each extending from the
// expiry the previous one committed.
func (s *PostgresStore) GrantPremium(tgID int64, months int) (time.Time, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current *time.Time
	err = tx.QueryRow(ctx, `
SELECT premium_expiry
FROM users
WHERE tg_id = $1
FOR UPDATE
`, tgID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrUserNotFound
		}
		return time.Time{}, err
	}

	newExpiry := premium.NextExpiry(time.Now().UTC(), current, months)

	_, err = tx.Exec(ctx, `
UPDATE users
SET is_premium = TRUE, premium_expiry = $2
WHERE tg_id = $1
`, tgID, newExpiry)
	if err != nil {
		return time.Time{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return time.Time{}, err
	}
	return newExpiry, nil
}

func (s *PostgresStore) AddItem(item types.ContentItem) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var id int64
	err := s.pool.QueryRow(ctx, `
INSERT INTO content (grade, category, subject, chapter, title, file_id, premium)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`, item.Grade, item.Category, item.Subject, item.Chapter, item.Title, item.FileID, item.Premium).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PostgresStore) ListSubjects(grade, category string) ([]string, error) {
	return s.listDistinct(`
SELECT DISTINCT subject
FROM content
WHERE grade = $1 AND category = $2
ORDER BY subject
`, grade, category)
}

func (s *PostgresStore) ListChapters(grade, category, subject string) ([]string, error) {
	return s.listDistinct(`
SELECT DISTINCT chapter
FROM content
WHERE grade = $1 AND category = $2 AND subject = $3
ORDER BY chapter
`, grade, category, subject)
}

func (s *PostgresStore) listDistinct(query string, args ...any) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListItems(grade, category, subject, chapter string) ([]types.ContentItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rows, err := s.pool.Query(ctx, `
SELECT id, grade, category, subject, chapter, title, file_id, premium, created_at
FROM content
WHERE grade = $1 AND category = $2 AND subject = $3 AND chapter = $4
ORDER BY created_at DESC
`, grade, category, subject, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []types.ContentItem
	for rows.Next() {
		var it types.ContentItem
		if err := rows.Scan(&it.ID, &it.Grade, &it.Category, &it.Subject, &it.Chapter, &it.Title, &it.FileID, &it.Premium, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *PostgresStore) AddRedemption(req types.RedemptionRequest) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var id int64
	err := s.pool.QueryRow(ctx, `
INSERT INTO redemptions (ref, tg_id, txn_id, plan)
VALUES ($1, $2, $3, $4)
RETURNING id
`, req.Ref, req.TelegramID, strings.TrimSpace(req.TxnID), req.Plan).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PostgresStore) GetStats() (*types.Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var st types.Stats
	err := s.pool.QueryRow(ctx, `
SELECT
  (SELECT COUNT(*) FROM users),
  (SELECT COUNT(*) FROM users WHERE premium_expiry IS NOT NULL AND premium_expiry > NOW()),
  (SELECT COUNT(*) FROM content),
  (SELECT COUNT(*) FROM redemptions),
  (SELECT COUNT(*) FROM quizzes)
`).Scan(&st.Users, &st.PremiumNow, &st.Items, &st.Redemptions, &st.Quizzes)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
