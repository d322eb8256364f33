// Package analytics is a privacy-conscious record of page visits and copy
// events. IP addresses are only ever stored hashed.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Section   string    `json:"section,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type CopyEvent struct {
	ID           int64     `json:"id"`
	SnippetTitle string    `json:"snippet_title"`
	OK           bool      `json:"ok"`
	Reason       string    `json:"reason,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type SnippetCopies struct {
	Title    string `json:"title"`
	Copies   int64  `json:"copies"`
	Failures int64  `json:"failures"`
}

type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	SectionViews     map[string]int64 `json:"section_views"`
	TotalCopies      int64            `json:"total_copies"`
	FailedCopies     int64            `json:"failed_copies"`
	TopSnippets      []SnippetCopies  `json:"top_snippets"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
}

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	section TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors(timestamp);
CREATE TABLE IF NOT EXISTS copy_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	snippet_title TEXT NOT NULL,
	ok INTEGER NOT NULL,
	reason TEXT,
	timestamp DATETIME NOT NULL
);`

// Open opens (creating if needed) the sqlite database at path. Use
// ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// A single connection keeps :memory: databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analytics schema: %w", err)
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// HashIP hashes ip with the per-process salt. The same IP maps to the same
// hash for the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, section, timestamp) VALUES (?, ?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Section, v.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *Store) RecordCopy(ctx context.Context, e CopyEvent) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO copy_events (snippet_title, ok, reason, timestamp) VALUES (?, ?, ?, ?)`,
		e.SnippetTitle, e.OK, e.Reason, e.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("record copy: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many rows
// were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).UTC()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{SectionViews: map[string]int64{}}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}, &stats.VisitorsThisWeek},
		{`SELECT COUNT(*) FROM copy_events`, nil, &stats.TotalCopies},
		{`SELECT COUNT(*) FROM copy_events WHERE ok = 0`, nil, &stats.FailedCopies},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT section, COUNT(*) FROM visitors WHERE section <> '' GROUP BY section`)
	if err != nil {
		return nil, fmt.Errorf("section views: %w", err)
	}
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("section views: %w", err)
		}
		stats.SectionViews[name] = n
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT snippet_title, SUM(ok), SUM(1 - ok)
		FROM copy_events
		GROUP BY snippet_title
		ORDER BY SUM(ok) DESC, snippet_title
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top snippets: %w", err)
	}
	for rows.Next() {
		var sc SnippetCopies
		if err := rows.Scan(&sc.Title, &sc.Copies, &sc.Failures); err != nil {
			rows.Close()
			return nil, fmt.Errorf("top snippets: %w", err)
		}
		stats.TopSnippets = append(stats.TopSnippets, sc)
	}
	rows.Close()

	recent, err := s.Visitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

// Visitors lists the most recent visits, newest first.
func (s *Store) Visitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, section, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ua, path, sec sql.NullString
		if err := rows.Scan(&v.ID, &v.HashedIP, &ua, &path, &sec, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("list visitors: %w", err)
		}
		v.UserAgent, v.Path, v.Section = ua.String, path.String, sec.String
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// DeleteVisitors removes every visit recorded for hashedIP and returns how
// many rows went.
func (s *Store) DeleteVisitors(ctx context.Context, hashedIP string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE hashed_ip = ?`, hashedIP)
	if err != nil {
		return 0, fmt.Errorf("delete visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewToken returns a random admin token.
func NewToken() (string, error) { return randomHex(32) }
