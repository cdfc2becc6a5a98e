package db

import (
	"fmt"
	"io"
	"os"
	"strings"

	dbpkg "github.com/dtnitsch/lexicorpus/pkg/db"
	"github.com/urfave/cli/v2"
)

// HistoryAction lists fetch attempts and successes per URL.
func HistoryAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	counts, err := database.AccessCounts()
	if err != nil {
		return err
	}
	return printHistory(os.Stdout, counts, c.Int("limit"))
}

func printHistory(w io.Writer, counts []dbpkg.AccessCount, limit int) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No fetches recorded")
		return err
	}
	if limit > 0 && limit < len(counts) {
		counts = counts[:limit]
	}

	fmt.Fprintf(w, "%-8s %-8s %-8s %s\n", "Attempts", "Success", "Failed", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, ac := range counts {
		fmt.Fprintf(w, "%-8d %-8d %-8d %s\n", ac.Attempts, ac.Successes, ac.Attempts-ac.Successes, ac.URL)
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d URLs\n", len(counts))
	return err
}

// ShowAction prints the last fetch and the cached copy of a URL.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("URL ID or URL required\nUsage: lexicorpus db show <url_id_or_url>")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	rawURL, urlID, err := ResolveURLFromIDOrURL(c.Args().First(), database)
	if err != nil {
		return err
	}
	last, err := database.GetLastAccess(urlID)
	if err != nil {
		return err
	}
	page, err := database.GetPageInfo(urlID)
	if err != nil {
		return err
	}
	return printShow(os.Stdout, urlID, rawURL, last, page)
}

func printShow(w io.Writer, urlID int64, rawURL string, last *dbpkg.AccessRecord, page *dbpkg.PageInfo) error {
	fmt.Fprintf(w, "[#%d] %s\n", urlID, rawURL)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	switch {
	case last == nil:
		fmt.Fprintln(w, "Last fetch:  never")
	case last.Success:
		fmt.Fprintf(w, "Last fetch:  ok (status %d)\n", last.StatusCode)
	default:
		fmt.Fprintf(w, "Last fetch:  failed [%s] (status %d)\n", last.ErrorType, last.StatusCode)
	}

	if page == nil {
		_, err := fmt.Fprintln(w, "Cached:      no")
		return err
	}
	_, err := fmt.Fprintf(w, "Cached:      %d bytes at %s\nHash:        %s\n",
		page.SizeBytes, page.FetchedAt.Format("2006-01-02 15:04:05"), page.ContentHash)
	return err
}

// RawAction prints the cached HTML of a URL regardless of its age.
func RawAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("URL ID or URL required\nUsage: lexicorpus db raw <url_id_or_url>")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	rawURL, _, err := ResolveURLFromIDOrURL(c.Args().First(), database)
	if err != nil {
		return err
	}
	body, ok, err := database.CachedPage(rawURL, 0)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no cached page for URL: %s\n\nTry:\n  lexicorpus corpus --db %s --urls %q", rawURL, database.Path(), rawURL)
	}

	_, err = os.Stdout.Write(body)
	return err
}

// FindURLAction prints the url_id of a URL.
func FindURLAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("URL required\nUsage: lexicorpus db find <url>")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	url := c.Args().First()
	urlID, err := database.GetURLID(url)
	if err != nil {
		return err
	}
	fmt.Printf("[#%d] %s\n", urlID, url)
	return nil
}
