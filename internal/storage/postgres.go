package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/storage/migrations"
)

const uniqueViolation = "23505"

// Store wraps the pgx pool and exposes the repositories backed by it.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool to the given DSN. Migrations must have been run
// first (see RunMigrations).
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return &Store{pool: pool}, nil
}

// RunMigrations applies the embedded goose migrations. It opens its own
// short-lived database/sql connection because goose drives *sql.DB.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Users() UserRepository {
	return &postgresUsers{pool: s.pool}
}

func (s *Store) SearchLog() SearchLogRepository {
	return &postgresSearchLog{pool: s.pool}
}

type postgresUsers struct {
	pool *pgxpool.Pool
}

const userColumns = `id, username, email, password_hash, location, dob, phone,
	avatar_id, saved_locations, login_count, created_at`

func (r *postgresUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, avatar_id, saved_locations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, models.DefaultAvatar, []string{},
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	user.AvatarID = models.DefaultAvatar
	user.SavedLocations = []string{}

	return user, nil
}

func (r *postgresUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresUsers) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET location = $2, dob = $3, phone = $4, avatar_id = $5,
		    saved_locations = $6, login_count = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		user.ID, user.Location, user.DOB, user.Phone,
		user.AvatarID, user.SavedLocations, user.LoginCount,
	)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postgresUsers) scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Location, &user.DOB, &user.Phone, &user.AvatarID,
		&user.SavedLocations, &user.LoginCount, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

type postgresSearchLog struct {
	pool *pgxpool.Pool
}

func (r *postgresSearchLog) Append(ctx context.Context, city string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO searches (city) VALUES ($1)`, city)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *postgresSearchLog) Recent(ctx context.Context, limit int) ([]models.SearchLogEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT city, created_at FROM searches ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	entries := make([]models.SearchLogEntry, 0, limit)
	for rows.Next() {
		var entry models.SearchLogEntry
		if err := rows.Scan(&entry.City, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("error performing sql request: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
