/*
Package sqlite provides the SQLite-backed persistence for everything that
outlives a quote session: intake applications, marketing posts, the
county-lookup table and the edited service catalog.

PURPOSE:
  Quote sessions themselves are transient and live in the in-memory store;
  this package holds the back-office records around them.

KEY TABLES:
  applications:  intake drafts/submissions, form state as a JSON document
  posts:         comment/marketing posts
  counties:      ZIP -> county/state lookup data (seeded on migrate)
  catalog:       single-row JSON document of the edited service catalog

DOCUMENT STORAGE:
  Application and catalog rows carry their payload as JSON. The schema
  stays stable while the form grows fields, and reads rehydrate through
  the same types the API serves.

WAL MODE:
  Opened with WAL so reads don't block behind the single writer. Use
  ":memory:" for tests.

SEE ALSO:
  - quote/store/memory.go: the transient session store
  - api/handlers.go: the consumers of these records
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/brokerdesk/quote-engine/catalog"
	"github.com/brokerdesk/quote-engine/intake"
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS applications (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		current_step INTEGER NOT NULL,
		data TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		channel TEXT NOT NULL DEFAULT 'general',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS counties (
		zip TEXT PRIMARY KEY,
		county TEXT NOT NULL,
		state TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS catalog (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
	CREATE INDEX IF NOT EXISTS idx_posts_channel ON posts(channel, created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.seedCounties()
}

// =============================================================================
// APPLICATIONS
// =============================================================================

// SaveApplication upserts an intake application.
func (s *Store) SaveApplication(ctx context.Context, app intake.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to marshal application: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (id, status, current_step, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			current_step = excluded.current_step,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		app.ID, string(app.Status), app.CurrentStep, string(data),
		app.CreatedAt.Format(time.RFC3339), app.UpdatedAt.Format(time.RFC3339))
	return err
}

// GetApplication returns one application, nil when unknown.
func (s *Store) GetApplication(ctx context.Context, id string) (*intake.Application, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM applications WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var app intake.Application
	if err := json.Unmarshal([]byte(data), &app); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application %s: %w", id, err)
	}
	return &app, nil
}

// ListApplications returns applications, optionally filtered by status,
// newest first.
func (s *Store) ListApplications(ctx context.Context, status string) ([]intake.Application, error) {
	query := `SELECT data FROM applications ORDER BY updated_at DESC`
	args := []any{}
	if status != "" {
		query = `SELECT data FROM applications WHERE status = ? ORDER BY updated_at DESC`
		args = append(args, status)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []intake.Application
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var app intake.Application
		if err := json.Unmarshal([]byte(data), &app); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// =============================================================================
// POSTS
// =============================================================================

// Post is one comment/marketing post.
type Post struct {
	ID        int64
	Author    string
	Title     string
	Body      string
	Channel   string
	CreatedAt time.Time
}

// SavePost inserts a post and returns it with its assigned ID.
func (s *Store) SavePost(ctx context.Context, p Post) (Post, error) {
	if p.Channel == "" {
		p.Channel = "general"
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (author, title, body, channel, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Author, p.Title, p.Body, p.Channel, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Post{}, err
	}
	p.ID, err = res.LastInsertId()
	return p, err
}

// ListPosts returns posts, optionally filtered by channel, newest first.
func (s *Store) ListPosts(ctx context.Context, channel string) ([]Post, error) {
	query := `SELECT id, author, title, body, channel, created_at FROM posts ORDER BY created_at DESC`
	args := []any{}
	if channel != "" {
		query = `SELECT id, author, title, body, channel, created_at FROM posts WHERE channel = ? ORDER BY created_at DESC`
		args = append(args, channel)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		var p Post
		var created string
		if err := rows.Scan(&p.ID, &p.Author, &p.Title, &p.Body, &p.Channel, &created); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeletePost removes a post. Reports whether a row existed.
func (s *Store) DeletePost(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// =============================================================================
// COUNTY LOOKUP
// =============================================================================

// County is one ZIP's county record.
type County struct {
	Zip    string `json:"zip"`
	County string `json:"county"`
	State  string `json:"state"`
}

// LookupCounty returns the county for a ZIP, nil when unknown.
func (s *Store) LookupCounty(ctx context.Context, zip string) (*County, error) {
	var c County
	err := s.db.QueryRowContext(ctx,
		`SELECT zip, county, state FROM counties WHERE zip = ?`, zip).
		Scan(&c.Zip, &c.County, &c.State)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCounty upserts one county record.
func (s *Store) SaveCounty(ctx context.Context, c County) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO counties (zip, county, state) VALUES (?, ?, ?)
		ON CONFLICT(zip) DO UPDATE SET county = excluded.county, state = excluded.state`,
		c.Zip, c.County, c.State)
	return err
}

// seedCounties loads a starter dataset so lookups work out of the box.
// Real deployments bulk-load the full HUD crosswalk over the top.
func (s *Store) seedCounties() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM counties`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := []County{
		{"85201", "Maricopa", "AZ"},
		{"85701", "Pima", "AZ"},
		{"90011", "Los Angeles", "CA"},
		{"92101", "San Diego", "CA"},
		{"94110", "San Francisco", "CA"},
		{"80202", "Denver", "CO"},
		{"33101", "Miami-Dade", "FL"},
		{"30301", "Fulton", "GA"},
		{"89101", "Clark", "NV"},
		{"97201", "Multnomah", "OR"},
		{"75201", "Dallas", "TX"},
		{"77001", "Harris", "TX"},
		{"78701", "Travis", "TX"},
		{"98101", "King", "WA"},
	}
	for _, c := range seed {
		if err := s.SaveCounty(context.Background(), c); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// CATALOG DOCUMENT
// =============================================================================

// SaveCatalog persists the edited catalog as a single JSON document.
func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO catalog (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

// LoadCatalog returns the persisted catalog, nil when none was saved yet.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM catalog WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c catalog.Catalog
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return &c, nil
}
