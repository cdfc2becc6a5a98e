package db

import (
	"testing"
	"time"
)

func TestCachedPage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	const u = "https://en.wikipedia.org/wiki/Customer_satisfaction"
	urlID, _ := db.InsertURL(u)

	if _, ok, err := db.CachedPage(u, time.Hour); err != nil || ok {
		t.Fatalf("CachedPage() before save = (ok=%v, err=%v), want miss", ok, err)
	}

	if err := db.SavePage(urlID, []byte("<p>first</p>")); err != nil {
		t.Fatalf("SavePage() error = %v", err)
	}
	if err := db.SavePage(urlID, []byte("<p>second</p>")); err != nil {
		t.Fatalf("SavePage() overwrite error = %v", err)
	}

	body, ok, err := db.CachedPage(u, time.Hour)
	if err != nil || !ok {
		t.Fatalf("CachedPage() = (ok=%v, err=%v), want hit", ok, err)
	}
	if string(body) != "<p>second</p>" {
		t.Errorf("CachedPage() body = %q, want latest copy", body)
	}

	var size int
	var hash string
	db.QueryRow("SELECT size_bytes, content_hash FROM pages WHERE url_id = ?", urlID).Scan(&size, &hash)
	if size != len("<p>second</p>") {
		t.Errorf("size_bytes = %d", size)
	}
	if len(hash) != 64 {
		t.Errorf("content_hash = %q, want sha256 hex", hash)
	}
}

func TestCachedPage_Expired(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	const u = "https://en.wikipedia.org/wiki/Cost"
	urlID, _ := db.InsertURL(u)
	if err := db.savePageAt(urlID, []byte("old"), time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("savePageAt() error = %v", err)
	}

	tests := []struct {
		name   string
		maxAge time.Duration
		wantOK bool
	}{
		{"younger than limit", 72 * time.Hour, true},
		{"older than limit", 24 * time.Hour, false},
		{"no limit", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := db.CachedPage(u, tt.maxAge)
			if err != nil {
				t.Fatalf("CachedPage() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("CachedPage(maxAge=%v) ok = %v, want %v", tt.maxAge, ok, tt.wantOK)
			}
		})
	}
}

func TestCachedPage_UnknownURL(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, ok, err := db.CachedPage("https://example.com/never", 0); err != nil || ok {
		t.Errorf("CachedPage(unknown) = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestGetPageInfo(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	urlID, _ := db.InsertURL("https://en.wikipedia.org/wiki/Benchmarking")
	if info, err := db.GetPageInfo(urlID); err != nil || info != nil {
		t.Fatalf("GetPageInfo() before save = (%v, %v), want (nil, nil)", info, err)
	}

	fetched := time.Unix(1700000000, 0)
	if err := db.savePageAt(urlID, []byte("<p>bench</p>"), fetched); err != nil {
		t.Fatalf("savePageAt() error = %v", err)
	}
	info, err := db.GetPageInfo(urlID)
	if err != nil || info == nil {
		t.Fatalf("GetPageInfo() = (%v, %v)", info, err)
	}
	if info.SizeBytes != 12 || !info.FetchedAt.Equal(fetched) {
		t.Errorf("GetPageInfo() = %+v", info)
	}

	got, err := db.GetURLByID(urlID)
	if err != nil || got != "https://en.wikipedia.org/wiki/Benchmarking" {
		t.Errorf("GetURLByID() = (%q, %v)", got, err)
	}
	if _, err := db.GetURLByID(urlID + 100); err == nil {
		t.Error("GetURLByID(unknown) error = nil")
	}
}
