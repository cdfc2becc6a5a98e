package db

import (
	"bytes"
	"strings"
	"testing"
	"time"

	dbpkg "github.com/dtnitsch/lexicorpus/pkg/db"
)

func TestPrintHistory(t *testing.T) {
	counts := []dbpkg.AccessCount{
		{URL: "https://en.wikipedia.org/wiki/Revenue", Attempts: 3, Successes: 2},
		{URL: "https://en.wikipedia.org/wiki/Churn_rate", Attempts: 1, Successes: 1},
	}

	var buf bytes.Buffer
	if err := printHistory(&buf, counts, 1); err != nil {
		t.Fatalf("printHistory() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "3        2        1        https://en.wikipedia.org/wiki/Revenue") {
		t.Errorf("printHistory() output:\n%s", out)
	}
	if strings.Contains(out, "Churn_rate") {
		t.Errorf("printHistory() ignored limit:\n%s", out)
	}

	buf.Reset()
	printHistory(&buf, nil, 0)
	if !strings.Contains(buf.String(), "No fetches recorded") {
		t.Errorf("printHistory(nil) = %q", buf.String())
	}
}

func TestPrintShow(t *testing.T) {
	tests := []struct {
		name string
		last *dbpkg.AccessRecord
		page *dbpkg.PageInfo
		want []string
	}{
		{
			name: "never fetched",
			want: []string{"Last fetch:  never", "Cached:      no"},
		},
		{
			name: "failed",
			last: &dbpkg.AccessRecord{StatusCode: 404, ErrorType: "fetch_error"},
			want: []string{"failed [fetch_error] (status 404)"},
		},
		{
			name: "cached",
			last: &dbpkg.AccessRecord{StatusCode: 200, Success: true},
			page: &dbpkg.PageInfo{SizeBytes: 42, ContentHash: "abc", FetchedAt: time.Now()},
			want: []string{"ok (status 200)", "42 bytes", "Hash:        abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printShow(&buf, 7, "https://en.wikipedia.org/wiki/Revenue", tt.last, tt.page); err != nil {
				t.Fatalf("printShow() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("printShow() missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestResolveURLFromIDOrURL(t *testing.T) {
	database, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer database.Close()

	const u = "https://en.wikipedia.org/wiki/Revenue"
	id, err := database.InsertURL(u)
	if err != nil {
		t.Fatalf("InsertURL() error = %v", err)
	}

	for _, arg := range []string{u, "1"} {
		gotURL, gotID, err := ResolveURLFromIDOrURL(arg, database)
		if err != nil || gotURL != u || gotID != id {
			t.Errorf("ResolveURLFromIDOrURL(%q) = (%q, %d, %v), want (%q, %d)", arg, gotURL, gotID, err, u, id)
		}
	}

	if _, _, err := ResolveURLFromIDOrURL("https://example.com/unknown", database); err == nil {
		t.Error("ResolveURLFromIDOrURL(unknown) error = nil")
	}
}
