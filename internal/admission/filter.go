// Package admission decides locally whether a query is a clear, on-topic
// request in Arabic before it is sent to the backend.
package admission

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	minRunes       = 4
	minArabicRunes = 3
)

// Reason identifies the rule that decided a verdict.
type Reason int

const (
	Admitted Reason = iota
	TooShort
	NotArabic
	OffTopic
	NoIntent
)

func (r Reason) String() string {
	switch r {
	case Admitted:
		return "admitted"
	case TooShort:
		return "too short"
	case NotArabic:
		return "not arabic"
	case OffTopic:
		return "off topic"
	case NoIntent:
		return "no service intent"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of screening one query.
type Verdict struct {
	Reason Reason
	// Match is the phrase that decided the verdict, when one did.
	Match string
}

// OK reports whether the query was admitted.
func (v Verdict) OK() bool {
	return v.Reason == Admitted
}

// Filter screens free-form text before it is sent to the intent backend.
// It is a keyword and shape gate; false positives and negatives are expected.
// A Filter is immutable and safe for concurrent use.
type Filter struct {
	deny   []string
	allow  []string
	travel []string
}

// New builds a Filter from rules, normalizing every phrase.
func New(rules Rules) *Filter {
	return &Filter{
		deny:   normalizeAll(rules.Deny),
		allow:  normalizeAll(rules.Allow),
		travel: normalizeAll(rules.Travel),
	}
}

// Default builds a Filter from DefaultRules.
func Default() *Filter {
	return New(DefaultRules())
}

// Admit reports whether text looks like a service request worth submitting.
func (f *Filter) Admit(text string) bool {
	return f.Check(text).OK()
}

// Check applies the rules in order and stops at the first failure.
func (f *Filter) Check(text string) Verdict {
	t := strings.TrimSpace(text)
	if utf8.RuneCountInString(t) < minRunes {
		return Verdict{Reason: TooShort}
	}
	if CountArabic(t) < minArabicRunes {
		return Verdict{Reason: NotArabic}
	}

	norm := Normalize(t)
	if hit, ok := firstContained(norm, f.deny); ok {
		return Verdict{Reason: OffTopic, Match: hit}
	}
	if hit, ok := firstContained(norm, f.allow); ok {
		return Verdict{Reason: Admitted, Match: hit}
	}
	if hit, ok := firstContained(norm, f.travel); ok {
		return Verdict{Reason: Admitted, Match: hit}
	}
	return Verdict{Reason: NoIntent}
}

// CountArabic counts runes in the Arabic block U+0600–U+06FF.
func CountArabic(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			n++
		}
	}
	return n
}

var alefVariants = strings.NewReplacer("أ", "ا", "إ", "ا", "آ", "ا")

// Normalize maps hamza and madda alef forms to bare alef and case-folds the
// result so mixed-script input compares uniformly.
func Normalize(s string) string {
	return cases.Fold().String(alefVariants.Replace(s))
}

func normalizeAll(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Normalize(p))
	}
	return out
}

func firstContained(s string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return p, true
		}
	}
	return "", false
}
