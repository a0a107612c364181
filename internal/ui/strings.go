package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens value to fit limit terminal cells, adding an ellipsis if
// needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// truncateMiddle shortens value by cutting from the middle so both ends stay
// readable. Used for file paths and URLs.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	keep := limit - 1
	head := keep / 2
	tail := keep - head

	prefix := runewidth.Truncate(value, head, "")
	runes := []rune(value)
	suffix := ""
	width := 0
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if width+w > tail {
			break
		}
		width += w
		suffix = string(runes[i]) + suffix
	}
	return prefix + "…" + suffix
}

// wrap breaks value into lines no wider than width, splitting on spaces.
// Words wider than width are kept whole on their own line.
func wrap(value string, width int) []string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
