package ui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"trims", "  abc  ", 5, "abc"},
		{"ellipsis", "abcdef", 4, "abc…"},
		{"no limit", "abcdef", 0, "abcdef"},
		{"one cell", "abcdef", 1, "a"},
		{"arabic fits", "المدفوعات", 20, "المدفوعات"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncate_WideRunesRespectCells(t *testing.T) {
	got := truncate("日本語のテキスト", 7)
	if w := runewidth.StringWidth(got); w > 7 {
		t.Fatalf("truncate width = %d, want <= 7 (%q)", w, got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("abcdefghij", 5); got != "ab…ij" {
		t.Fatalf("truncateMiddle = %q, want %q", got, "ab…ij")
	}
	if got := truncateMiddle("short", 10); got != "short" {
		t.Fatalf("truncateMiddle = %q, want unchanged", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "   ", 10, nil},
		{"single line", "a bb", 10, []string{"a bb"}},
		{"breaks", "a bb ccc", 4, []string{"a bb", "ccc"}},
		{"long word kept", "abcdefgh ij", 4, []string{"abcdefgh", "ij"}},
		{"no width", "a  b", 0, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("wrap(%q, %d) = %#v, want %#v", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
