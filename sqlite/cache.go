package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shodoc/shodoc"
)

// Compile-time interface verification.
var _ shodoc.FetchCache = (*CacheService)(nil)

// CacheService implements shodoc.FetchCache using SQLite.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// Get returns the cached entry for the URL, or ENOTFOUND if none exists.
func (s *CacheService) Get(ctx context.Context, repoURL string) (*shodoc.CacheEntry, error) {
	var entry shodoc.CacheEntry
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT repo_url, content, content_hash, fetched_at
		FROM cache
		WHERE repo_url = ?
	`, repoURL).Scan(&entry.RepoURL, &entry.Content, &entry.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, shodoc.Errorf(shodoc.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Put stores an entry, replacing any previous entry for the same URL.
// The content hash is computed from the content when not supplied.
func (s *CacheService) Put(ctx context.Context, entry *shodoc.CacheEntry) error {
	if entry.ContentHash == "" {
		entry.ContentHash = hashContent(entry.Content)
	}
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache (repo_url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (repo_url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, entry.RepoURL, entry.Content, entry.ContentHash, entry.FetchedAt.Format(time.RFC3339))

	return err
}
