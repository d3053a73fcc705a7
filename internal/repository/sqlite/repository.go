package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/Yesho700/url-shortner/internal/domain"
	"github.com/Yesho700/url-shortner/internal/repository"
)

// Repository implements repository.URLRepository using SQLite
type Repository struct {
	db       *sql.DB
	stopChan chan struct{}
	purging  bool
}

// New creates a new SQLite repository
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers unblocked during click-counter writes
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	repo := &Repository{
		db:       db,
		stopChan: make(chan struct{}),
	}

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Create inserts a new record
func (r *Repository) Create(ctx context.Context, longURL, shortCode string, createdAt, expiresAt time.Time) (*domain.ShortURL, error) {
	query := `
		INSERT INTO urls (long_url, short_code, clicks, created_at, expires_at)
		VALUES (?, ?, 0, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, longURL, shortCode, createdAt, expiresAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, domain.ErrCodeExists
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	return &domain.ShortURL{
		ID:        id,
		LongURL:   longURL,
		ShortCode: shortCode,
		Clicks:    0,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

// FindByLongURL retrieves a live record by exact long URL match
func (r *Repository) FindByLongURL(ctx context.Context, longURL string) (*domain.ShortURL, error) {
	query := `
		SELECT id, long_url, short_code, clicks, user_id, created_at, expires_at
		FROM urls
		WHERE long_url = ? AND expires_at > ?
	`
	return r.scanURL(r.db.QueryRowContext(ctx, query, longURL, time.Now()))
}

// FindByShortCode retrieves a live record by short code
func (r *Repository) FindByShortCode(ctx context.Context, shortCode string) (*domain.ShortURL, error) {
	query := `
		SELECT id, long_url, short_code, clicks, user_id, created_at, expires_at
		FROM urls
		WHERE short_code = ? AND expires_at > ?
	`
	return r.scanURL(r.db.QueryRowContext(ctx, query, shortCode, time.Now()))
}

// FindAndIncrementClicks increments the click counter and returns the
// updated record in a single statement, so concurrent resolves of the
// same code never lose an increment
func (r *Repository) FindAndIncrementClicks(ctx context.Context, shortCode string) (*domain.ShortURL, error) {
	query := `
		UPDATE urls
		SET clicks = clicks + 1
		WHERE short_code = ? AND expires_at > ?
		RETURNING id, long_url, short_code, clicks, user_id, created_at, expires_at
	`
	return r.scanURL(r.db.QueryRowContext(ctx, query, shortCode, time.Now()))
}

// IncrementClicks increments the click counter without returning the record
func (r *Repository) IncrementClicks(ctx context.Context, shortCode string) error {
	query := `UPDATE urls SET clicks = clicks + 1 WHERE short_code = ? AND expires_at > ?`

	result, err := r.db.ExecContext(ctx, query, shortCode, time.Now())
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TotalClicks returns the sum of clicks across all records
func (r *Repository) TotalClicks(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(clicks), 0) FROM urls").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum clicks: %w", err)
	}
	return total, nil
}

// PurgeExpired deletes records whose expires_at has passed
func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM urls WHERE expires_at <= ?", time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired URLs: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check purged rows: %w", err)
	}
	return affected, nil
}

// StartExpiryPurge starts a background loop deleting expired records at
// the given interval, standing in for a store-managed TTL index
func (r *Repository) StartExpiryPurge(ctx context.Context, interval time.Duration) error {
	if r.purging {
		return fmt.Errorf("expiry purge already running")
	}
	r.purging = true

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stopChan:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged, err := r.PurgeExpired(ctx)
				if err != nil {
					log.Printf("[ERROR] Expiry purge failed: %v", err)
					continue
				}
				if purged > 0 {
					log.Printf("Purged %d expired URLs", purged)
				}
			}
		}
	}()

	return nil
}

// StopExpiryPurge stops the background expiry loop
func (r *Repository) StopExpiryPurge() error {
	if !r.purging {
		return nil
	}
	r.purging = false
	close(r.stopChan)
	return nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// scanURL maps a single-row query result onto a domain record
func (r *Repository) scanURL(row *sql.Row) (*domain.ShortURL, error) {
	var url domain.ShortURL
	var userID sql.NullString

	err := row.Scan(
		&url.ID,
		&url.LongURL,
		&url.ShortCode,
		&url.Clicks,
		&userID,
		&url.CreatedAt,
		&url.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan URL: %w", err)
	}

	if userID.Valid {
		url.UserID = userID.String
	}

	return &url, nil
}

// Ensure Repository implements the interface
var _ repository.URLRepository = (*Repository)(nil)
