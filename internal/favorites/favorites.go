// Package favorites holds the curated favorites catalog and correlates it with
// the latest search suggestions.
package favorites

import (
	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/state"
)

// Default returns the built-in favorites catalog.
func Default() []gie.Service {
	return []gie.Service{
		{
			ID:          "payments",
			Title:       "المدفوعات الحكومية",
			Description: "سداد الرسوم الحكومية (محاكاة).",
			Action:      gie.Action{Type: gie.ActionNavigate, Target: "payments"},
		},
		{
			ID:          "appointments",
			Title:       "إدارة المواعيد",
			Description: "حجز/تعديل/إلغاء موعد (محاكاة).",
			Action:      gie.Action{Type: gie.ActionNavigate, Target: "appointments"},
		},
		{
			ID:          "documents_delivery",
			Title:       "توصيل الوثائق",
			Description: "طلب توصيل الوثائق (محاكاة).",
			Action:      gie.Action{Type: gie.ActionNavigate, Target: "documents-delivery"},
		},
		{
			ID:          "delegation",
			Title:       "إدارة التفويض",
			Description: "إنشاء/إلغاء تفويض (محاكاة).",
			Action:      gie.Action{Type: gie.ActionNavigate, Target: "delegation"},
		},
	}
}

// Correlate returns the catalog entries to display for s. With no active
// filter the whole catalog is returned; otherwise only entries whose target is
// in the filter, in catalog order. The result never aliases catalog.
func Correlate(catalog []gie.Service, s state.Suggestions) []gie.Service {
	out := make([]gie.Service, 0, len(catalog))
	for _, svc := range catalog {
		if s.Active() && !s.Contains(svc.Action.Target) {
			continue
		}
		out = append(out, svc)
	}
	return out
}
