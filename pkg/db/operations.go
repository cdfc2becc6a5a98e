package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/dtnitsch/lexicorpus/internal/common"
)

// InsertURL records a URL and returns its url_id. Inserting a URL that
// already exists returns the existing url_id, also when several workers
// insert it at once.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}

	_, err := db.Exec(`
		INSERT INTO urls (original_url) VALUES (?)
		ON CONFLICT(original_url) DO NOTHING
	`, rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}
	return db.GetURLID(rawURL)
}

// GetURLID returns the url_id for a given original URL.
func (db *DB) GetURLID(originalURL string) (int64, error) {
	var urlID int64
	err := db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", originalURL).Scan(&urlID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("URL not found: %s", originalURL)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// RecordAccess records a fetch attempt in url_accesses.
func (db *DB) RecordAccess(urlID int64, statusCode int, errorType string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO url_accesses (url_id, status_code, error_type, success)
		VALUES (?, ?, ?, ?)
	`, urlID, statusCode, errorType, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// AccessRecord represents a URL access attempt.
type AccessRecord struct {
	AccessID   int64
	StatusCode int
	ErrorType  string
	Success    bool
}

// GetLastAccess returns the most recent access record for a URL, or nil
// when the URL was never fetched.
func (db *DB) GetLastAccess(urlID int64) (*AccessRecord, error) {
	var record AccessRecord
	var errorType sql.NullString
	err := db.QueryRow(`
		SELECT access_id, status_code, error_type, success
		FROM url_accesses
		WHERE url_id = ?
		ORDER BY access_id DESC
		LIMIT 1
	`, urlID).Scan(&record.AccessID, &record.StatusCode, &errorType, &record.Success)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last access: %w", err)
	}
	record.ErrorType = errorType.String
	return &record, nil
}

// AccessCount summarizes the fetch history of one URL.
type AccessCount struct {
	URL       string `json:"url" yaml:"url"`
	Attempts  int    `json:"attempts" yaml:"attempts"`
	Successes int    `json:"successes" yaml:"successes"`
}

// AccessCounts returns attempts and successes per URL, most attempted first.
func (db *DB) AccessCounts() ([]AccessCount, error) {
	rows, err := db.Query(`
		SELECT u.original_url, COUNT(a.access_id), COALESCE(SUM(a.success), 0)
		FROM urls u
		JOIN url_accesses a ON a.url_id = u.url_id
		GROUP BY u.url_id
		ORDER BY COUNT(a.access_id) DESC, u.original_url
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count accesses: %w", err)
	}
	defer rows.Close()

	var counts []AccessCount
	for rows.Next() {
		var c AccessCount
		if err := rows.Scan(&c.URL, &c.Attempts, &c.Successes); err != nil {
			return nil, fmt.Errorf("failed to scan access count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// SavePage stores body as the latest copy of the URL, replacing any older one.
func (db *DB) SavePage(urlID int64, body []byte) error {
	return db.savePageAt(urlID, body, time.Now())
}

func (db *DB) savePageAt(urlID int64, body []byte, fetchedAt time.Time) error {
	_, err := db.Exec(`
		INSERT INTO pages (url_id, body, size_bytes, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url_id) DO UPDATE SET
			body = excluded.body,
			size_bytes = excluded.size_bytes,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, urlID, body, len(body), common.ContentHash(body), fetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}
	return nil
}

// CachedPage returns the stored body of rawURL if it is younger than maxAge.
// maxAge <= 0 accepts any age. ok is false on a miss.
func (db *DB) CachedPage(rawURL string, maxAge time.Duration) (body []byte, ok bool, err error) {
	var fetchedAt int64
	err = db.QueryRow(`
		SELECT p.body, p.fetched_at
		FROM pages p
		JOIN urls u ON u.url_id = p.url_id
		WHERE u.original_url = ?
	`, rawURL).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached page: %w", err)
	}

	if maxAge > 0 && time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}
	return body, true, nil
}

// GetURLByID returns the original URL stored under urlID.
func (db *DB) GetURLByID(urlID int64) (string, error) {
	var rawURL string
	err := db.QueryRow("SELECT original_url FROM urls WHERE url_id = ?", urlID).Scan(&rawURL)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("URL ID not found: %d", urlID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get URL: %w", err)
	}
	return rawURL, nil
}

// PageInfo describes the cached copy of a URL without its body.
type PageInfo struct {
	SizeBytes   int       `json:"size_bytes" yaml:"size_bytes"`
	ContentHash string    `json:"content_hash" yaml:"content_hash"`
	FetchedAt   time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// GetPageInfo returns the metadata of the cached page for urlID, or nil
// when nothing is cached.
func (db *DB) GetPageInfo(urlID int64) (*PageInfo, error) {
	var info PageInfo
	var fetchedAt int64
	err := db.QueryRow(`
		SELECT size_bytes, content_hash, fetched_at
		FROM pages
		WHERE url_id = ?
	`, urlID).Scan(&info.SizeBytes, &info.ContentHash, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page info: %w", err)
	}
	info.FetchedAt = time.Unix(fetchedAt, 0)
	return &info, nil
}
