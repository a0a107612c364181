package admission

// Rules holds the phrase lists that drive the filter. Entries are matched as
// substrings of the normalized query, so they are normalized once when a
// Filter is built.
type Rules struct {
	// Deny phrases mark everyday, off-topic requests. Any hit rejects.
	Deny []string `toml:"deny"`
	// Allow keywords mark service-domain intent. At least one must match.
	Allow []string `toml:"allow"`
	// Travel keywords are accepted in place of an allow keyword.
	Travel []string `toml:"travel"`
}

// DefaultRules returns the built-in phrase lists.
func DefaultRules() Rules {
	return Rules{
		Deny: []string{
			"اتروش", "استحم", "شاور", "اكل", "أكل", "أنام", "انام", "العب",
			"افطر", "غداء", "عشاء", "ابا اروح", "ابي اروح",
		},
		Allow: []string{
			"ابغى", "أبغى", "ابي", "أبي", "ابا", "احتاج", "أحتاج", "كيف",
			"اصدار", "إصدار", "تجديد", "حجز", "موعد", "بلاغ", "تأشيرة",
			"تفويض", "وثيقة", "وثائق", "توصيل", "سداد", "مدفوعات",
			"اقامة", "اقامه", "جواز", "هوية", "رخصة", "نقل", "مخالفات", "سفر",
		},
		Travel: []string{"اسافر", "سافر"},
	}
}

// Merge returns r with every non-empty list in override replacing its
// counterpart.
func (r Rules) Merge(override Rules) Rules {
	if len(override.Deny) > 0 {
		r.Deny = override.Deny
	}
	if len(override.Allow) > 0 {
		r.Allow = override.Allow
	}
	if len(override.Travel) > 0 {
		r.Travel = override.Travel
	}
	return r
}
