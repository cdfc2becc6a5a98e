// Package report renders frequency results as plain-text blocks for the
// terminal. Nothing here feeds back into the pipeline.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Entry is one ranked row.
type Entry struct {
	Label string
	Count int
}

func block(title string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{dimStyle.Render("(empty)")}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), boxStyle.Render(body))
}

// Ranked renders entries in the given order with right-aligned counts.
func Ranked(title string, entries []Entry) string {
	labelW, countW := 0, 0
	for _, e := range entries {
		labelW = max(labelW, lipgloss.Width(e.Label))
		countW = max(countW, len(fmt.Sprint(e.Count)))
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		pad := strings.Repeat(" ", labelW-lipgloss.Width(e.Label))
		lines[i] = fmt.Sprintf("%s%s  %s", e.Label, pad, countStyle.Render(fmt.Sprintf("%*d", countW, e.Count)))
	}
	return block(title, lines)
}

// Histogram renders one bar per bin, scaled so the largest bin spans the
// full bar width. labels and counts must have the same length.
func Histogram(title string, labels []string, counts []int) string {
	peak, labelW := 0, 0
	for i, c := range counts {
		peak = max(peak, c)
		if i < len(labels) {
			labelW = max(labelW, lipgloss.Width(labels[i]))
		}
	}

	lines := make([]string, 0, len(counts))
	for i, c := range counts {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		n := 0
		if peak > 0 {
			n = c * barWidth / peak
		}
		if c > 0 && n == 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("%*s │%s %d", labelW, label, barStyle.Render(strings.Repeat("█", n)), c))
	}
	return block(title, lines)
}

// Pairs renders sparse (id, count) pairs the way they are usually printed
// for bag-of-words vectors: "(0, 2) (1, 1)", wrapped every perLine pairs.
func Pairs(title string, pairs [][2]int, perLine int) string {
	if perLine <= 0 {
		perLine = 5
	}
	var lines []string
	var cur []string
	for _, p := range pairs {
		cur = append(cur, fmt.Sprintf("(%d, %d)", p[0], p[1]))
		if len(cur) == perLine {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return block(title, lines)
}

// List renders lines as-is under a title.
func List(title string, lines []string) string {
	return block(title, lines)
}
