package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/state"
)

type healthState int

const (
	healthUnknown healthState = iota
	healthUp
	healthDown
)

func classifyHealth(h state.Health) healthState {
	switch {
	case !h.Probed():
		return healthUnknown
	case h.Up:
		return healthUp
	default:
		return healthDown
	}
}

// healthLabel is the text inside the status pill.
func healthLabel(h state.Health) string {
	switch classifyHealth(h) {
	case healthUp:
		return "● متصل"
	case healthDown:
		if h.ConsecutiveFailures > 1 {
			return fmt.Sprintf("● غير متصل ×%d", h.ConsecutiveFailures)
		}
		return "● غير متصل"
	default:
		return "● جارٍ الفحص"
	}
}

// renderHeader renders the top bar: name, backend pill and last check.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("musaed", styles.Logo),
		styles.HealthPill(classifyHealth(m.health)).Render(healthLabel(m.health)),
	}
	if m.health.Probed() {
		parts = append(parts,
			bg.Render("آخر فحص", styles.FaintText)+bg.Spaces(1)+
				bg.Render(m.health.Checked.Format("15:04:05"), styles.MutedText))
	}
	if m.width >= LayoutWideWidth && m.apiBase != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.apiBase, 40), styles.FaintText))
	}
	if m.pending {
		parts = append(parts, bg.Render(m.spinner.View()+" جارٍ البحث", styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderInput renders the query box.
func (m Model) renderInput() string {
	styles := m.theme.Styles()
	box := styles.Input
	if m.focus == paneInput {
		box = styles.InputFocused
	}
	return box.Width(max(m.width-2, 10)).Render(m.input.View())
}

// renderBanner renders the guidance or error line, if any.
func (m Model) renderBanner() string {
	if m.board.Error == "" {
		return ""
	}
	return m.theme.Styles().Banner.Render(m.board.Error)
}

// maxTopIntents caps how many ranked intents the meta line lists.
const maxTopIntents = 3

// renderMeta describes the backend's reading of the last admitted query: the
// detected intent, the match mode and the best ranked alternatives.
func (m Model) renderMeta() string {
	b := m.board
	if b.Intent == "" && b.Mode == "" && len(b.TopIntents) == 0 {
		return ""
	}
	styles := m.theme.Styles()

	var text string
	if b.Intent != "" {
		text = styles.MutedText.Render("النية: ") + styles.InfoText.Render(b.Intent)
		if b.Confidence > 0 {
			text += styles.FaintText.Render(fmt.Sprintf(" (%.0f%%)", b.Confidence*100))
		}
	}
	if b.Mode != "" {
		if text != "" {
			text += " "
		}
		text += styles.WarningText.Render("[" + b.Mode + "]")
	}

	if len(b.TopIntents) > 0 {
		ranked := make([]string, 0, maxTopIntents)
		for _, ti := range b.TopIntents[:min(len(b.TopIntents), maxTopIntents)] {
			ranked = append(ranked, topIntentLabel(ti))
		}
		line := styles.MutedText.Render("الأقرب: ") + styles.FaintText.Render(strings.Join(ranked, " · "))
		if text == "" {
			return line
		}
		text += "\n" + line
	}
	return text
}

// topIntentLabel renders one ranked intent as "label (NN%)", falling back to
// the id when the backend sent no Arabic label.
func topIntentLabel(ti gie.TopIntent) string {
	label := ti.Label
	if label == "" {
		label = ti.ID
	}
	if ti.Confidence > 0 {
		label += fmt.Sprintf(" (%.0f%%)", ti.Confidence*100)
	}
	return label
}

// renderFooter renders the key hints, or a transient notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.notice != "" {
		return styles.Footer.Width(m.width).Render(styles.AccentText.Background(lipgloss.Color(m.theme.Surface)).Render(m.notice))
	}

	var hints []string
	if m.focus == paneInput {
		hints = []string{"enter إرسال", "tab البطاقات", "ctrl+c خروج"}
	} else {
		hints = []string{"enter تفاصيل", "/ بحث", "c نسخ", "L السجل", "T السمة", "? مساعدة", "q خروج"}
	}
	if m.lastNav != nil {
		hints = append(hints, m.lastNav.Fragment())
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  •  "))
}
