// Package session owns "who is logged in and as what role": a persistent
// store keyed by the browser's session cookie, with an in-memory cache in
// front, and the lifecycle operations built on top of it.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/pkg/sealer"
)

// Record is the persisted session state, the server-side analog of the
// browser-storage keys the platform tracks per user.
type Record struct {
	UserID          int64
	UserType        models.Role
	Name            string
	Email           string
	AdminToken      string
	RegisteredFairs []int64
	LastFairID      int64
	UpdatedAt       time.Time
}

// Authenticated reports whether the record identifies a logged-in user.
// Both the identifier and the role must be present.
func (r Record) Authenticated() bool {
	return r.UserID > 0 && r.UserType != ""
}

// clone returns a copy whose RegisteredFairs has its own backing array.
// Records crossing the cache boundary must never share slices with callers.
func (r Record) clone() Record {
	if r.RegisteredFairs != nil {
		r.RegisteredFairs = append([]int64(nil), r.RegisteredFairs...)
	}
	return r
}

// Store is the single seam over session persistence. Every reader goes
// through it, so validation or multi-tab synchronization can be added later
// without touching call sites.
type Store interface {
	Load(ctx context.Context, sid string) (Record, bool, error)
	Save(ctx context.Context, sid string, rec Record) error
	Clear(ctx context.Context, sid string) error
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	sid              TEXT PRIMARY KEY,
	user_id          INTEGER NOT NULL DEFAULT 0,
	user_type        TEXT    NOT NULL DEFAULT '',
	name             TEXT    NOT NULL DEFAULT '',
	email            TEXT    NOT NULL DEFAULT '',
	admin_token      BLOB,
	registered_fairs TEXT    NOT NULL DEFAULT '[]',
	last_fair_id     INTEGER NOT NULL DEFAULT 0,
	updated_at       INTEGER NOT NULL
);`

// SQLStore persists session records in a local sqlite file. Writes are
// last-write-wins; the mutex serializes them within this process only.
type SQLStore struct {
	db     *sql.DB
	sealer *sealer.Sealer
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]Record
}

// NewSQLStore opens (and creates if needed) the session database at path.
// A zero ttl means sessions never expire locally.
func NewSQLStore(path string, seal *sealer.Sealer, ttl time.Duration) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}

	return &SQLStore{
		db:     db,
		sealer: seal,
		ttl:    ttl,
		cache:  make(map[string]Record),
	}, nil
}

// Load returns the record for sid and whether one exists.
func (s *SQLStore) Load(ctx context.Context, sid string) (Record, bool, error) {
	s.mu.RLock()
	rec, hit := s.cache[sid]
	s.mu.RUnlock()
	if hit {
		if s.ttl > 0 && time.Since(rec.UpdatedAt) > s.ttl {
			// A cached session expires the same way a persisted one does.
			if err := s.Clear(ctx, sid); err != nil {
				return Record{}, false, err
			}
			return Record{}, false, nil
		}
		return rec.clone(), true, nil
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, user_type, name, email, admin_token, registered_fairs, last_fair_id, updated_at
		FROM sessions WHERE sid = ?`, sid)

	var role string
	var sealedToken []byte
	var fairsJSON string
	var updatedAt int64
	err := row.Scan(&rec.UserID, &role, &rec.Name, &rec.Email, &sealedToken, &fairsJSON, &rec.LastFairID, &updatedAt)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("load session: %w", err)
	}

	rec.UserType = models.Role(role)
	rec.UpdatedAt = time.Unix(updatedAt, 0)

	if s.ttl > 0 && time.Since(rec.UpdatedAt) > s.ttl {
		// Expired on disk: treat as absent and clean up.
		if err := s.Clear(ctx, sid); err != nil {
			return Record{}, false, err
		}
		return Record{}, false, nil
	}

	if err := json.Unmarshal([]byte(fairsJSON), &rec.RegisteredFairs); err != nil {
		rec.RegisteredFairs = nil
	}

	if len(sealedToken) > 0 {
		token, err := s.sealer.Open(sealedToken)
		if err != nil {
			// Unreadable token (key rotation, tampering): drop the token,
			// keep the rest of the record.
			token = ""
		}
		rec.AdminToken = token
	}

	s.mu.Lock()
	s.cache[sid] = rec.clone()
	s.mu.Unlock()

	return rec, true, nil
}

// Save writes the record through to disk and refreshes the cache.
func (s *SQLStore) Save(ctx context.Context, sid string, rec Record) error {
	rec.UpdatedAt = time.Now()

	var sealedToken []byte
	if rec.AdminToken != "" {
		var err error
		sealedToken, err = s.sealer.Seal(rec.AdminToken)
		if err != nil {
			return fmt.Errorf("seal admin token: %w", err)
		}
	}

	fairs := rec.RegisteredFairs
	if fairs == nil {
		fairs = []int64{}
	}
	fairsJSON, err := json.Marshal(fairs)
	if err != nil {
		return fmt.Errorf("encode registered fairs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (sid, user_id, user_type, name, email, admin_token, registered_fairs, last_fair_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sid) DO UPDATE SET
			user_id = excluded.user_id,
			user_type = excluded.user_type,
			name = excluded.name,
			email = excluded.email,
			admin_token = excluded.admin_token,
			registered_fairs = excluded.registered_fairs,
			last_fair_id = excluded.last_fair_id,
			updated_at = excluded.updated_at`,
		sid, rec.UserID, string(rec.UserType), rec.Name, rec.Email, sealedToken, string(fairsJSON), rec.LastFairID, rec.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.cache[sid] = rec.clone()
	return nil
}

// Clear removes the record for sid. Clearing an absent session is a no-op.
func (s *SQLStore) Clear(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE sid = ?`, sid); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	delete(s.cache, sid)
	return nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
