package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Extraction modes.
const (
	ModeParagraphs  = "paragraphs"
	ModeReadability = "readability"
)

// Paragraphs returns the text of every <p> element in document order, one
// paragraph per line. Empty paragraphs are kept as empty lines so line
// positions match the source.
func Paragraphs(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return paragraphs(doc), nil
}

func paragraphs(doc *goquery.Document) string {
	var lines []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		lines = append(lines, normalizeText(s.Text()))
	})
	return strings.Join(lines, "\n")
}

// Readable lets go-readability find the main article and then collects its
// paragraphs. Navigation, footers and sidebars are dropped.
func Readable(html, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse article HTML: %w", err)
	}
	text := paragraphs(doc)
	if strings.TrimSpace(text) == "" {
		// Articles without <p> markup still have text content.
		text = normalizeText(article.TextContent)
	}
	return text, nil
}

// Extract dispatches on mode. An empty mode means paragraphs.
func Extract(mode, html, rawURL string) (string, error) {
	switch mode {
	case "", ModeParagraphs:
		return Paragraphs(html)
	case ModeReadability:
		return Readable(html, rawURL)
	default:
		return "", fmt.Errorf("unknown extract mode %q", mode)
	}
}

// normalizeText collapses the lines of a node's text into a single line.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
