package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Level is the severity inferred for a log line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Entry is a log line split into its parts.
type Entry struct {
	Time    time.Time
	Stamp   string
	Message string
	Level   Level
}

const stampLayout = "2006/01/02 15:04:05"

var (
	errorMarkers = []string{"could not", "failed", "error"}
	warnMarkers  = []string{"rejected", "stale", "down"}
)

// Parse splits a line written by the standard logger (date and time prefix)
// and infers its level from the message. Lines without a timestamp are kept
// whole as the message.
func Parse(line string) Entry {
	entry := Entry{Message: line}
	if len(line) > len(stampLayout) && line[len(stampLayout)] == ' ' {
		stamp := line[:len(stampLayout)]
		if t, err := time.ParseInLocation(stampLayout, stamp, time.Local); err == nil {
			entry.Time = t
			entry.Stamp = stamp
			entry.Message = line[len(stampLayout)+1:]
		}
	}
	entry.Level = classify(entry.Message)
	return entry
}

func classify(msg string) Level {
	lower := strings.ToLower(msg)
	for _, m := range errorMarkers {
		if strings.Contains(lower, m) {
			return LevelError
		}
	}
	for _, m := range warnMarkers {
		if strings.Contains(lower, m) {
			return LevelWarn
		}
	}
	return LevelInfo
}
