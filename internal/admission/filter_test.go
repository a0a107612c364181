package admission

import "testing"

func TestCheck_RulesInOrder(t *testing.T) {
	f := Default()

	tests := []struct {
		name  string
		input string
		want  Reason
	}{
		{"empty", "", TooShort},
		{"whitespace only", "     ", TooShort},
		{"three runes after trim", "  ابغ  ", TooShort},
		{"latin only", "renew my passport", NotArabic},
		{"two arabic runes", "renew اب passport", NotArabic},
		{"deny phrase", "ابا اروح انام", OffTopic},
		{"deny beats allow", "ابغى تجديد جواز بعد ما انام", OffTopic},
		{"deny with hamza", "ابي أنام الحين", OffTopic},
		{"greeting has no intent", "السلام عليكم", NoIntent},
		{"allow keyword", "ابغى اجدد جوازي", Admitted},
		{"allow keyword with hamza", "أبغى موعد", Admitted},
		{"payment request", "ابغى اسدد رسوم", Admitted},
		{"travel keyword", "ودي اسافر بكرة", Admitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Check(tt.input)
			if got.Reason != tt.want {
				t.Fatalf("Check(%q) = %v (match %q), want %v", tt.input, got.Reason, got.Match, tt.want)
			}
			if f.Admit(tt.input) != (tt.want == Admitted) {
				t.Fatalf("Admit(%q) disagrees with Check", tt.input)
			}
		})
	}
}

func TestCheck_TravelMatchReported(t *testing.T) {
	got := Default().Check("ودي اسافر بكرة")
	if got.Match != "اسافر" {
		t.Fatalf("Match = %q, want اسافر", got.Match)
	}
}

func TestNew_NormalizesRulePhrases(t *testing.T) {
	f := New(Rules{Allow: []string{"  تأشيرة  ", ""}})
	if !f.Admit("طلب تاشيرة") {
		t.Fatalf("hamza keyword should match bare-alef query")
	}
	if !f.Admit("طلب تأشيرة") {
		t.Fatalf("hamza keyword should match hamza query")
	}
}

func TestNew_CaseFoldsMixedScript(t *testing.T) {
	f := New(Rules{Allow: []string{"VISA"}})
	if !f.Admit("طلب visa عمل") {
		t.Fatalf("case-folded keyword should match lower-case query")
	}
}

func TestCheck_EveryDenyPhraseRejects(t *testing.T) {
	f := Default()
	for _, phrase := range DefaultRules().Deny {
		// Pad with an allow keyword so only the deny rule can reject.
		input := "ابغى تجديد " + phrase
		if f.Admit(input) {
			t.Errorf("Admit(%q) = true, want false", input)
		}
	}
}

func TestCheck_EveryAllowKeywordAdmits(t *testing.T) {
	f := Default()
	for _, kw := range DefaultRules().Allow {
		// "طلب" adds Arabic runes without touching any list.
		input := "طلب " + kw
		if !f.Admit(input) {
			t.Errorf("Admit(%q) = false, want true", input)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("أإآ"); got != "ااا" {
		t.Fatalf("Normalize alef variants = %q, want ااا", got)
	}
	if got := Normalize("ABC"); got != "abc" {
		t.Fatalf("Normalize latin = %q, want abc", got)
	}
}

func TestCountArabic(t *testing.T) {
	if got := CountArabic("abc ابت 123"); got != 3 {
		t.Fatalf("CountArabic = %d, want 3", got)
	}
}

func TestRulesMerge(t *testing.T) {
	base := DefaultRules()
	merged := base.Merge(Rules{Travel: []string{"رحلة"}})
	if len(merged.Travel) != 1 || merged.Travel[0] != "رحلة" {
		t.Fatalf("Travel = %v, want override", merged.Travel)
	}
	if len(merged.Allow) != len(base.Allow) || len(merged.Deny) != len(base.Deny) {
		t.Fatalf("empty override lists should keep defaults")
	}
}
