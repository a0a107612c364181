package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/musaed/internal/session"
)

// renderDetail renders the open service's details centred on screen.
func (m Model) renderDetail() string {
	modal := m.dispatcher.Modal()
	service, ok := modal.Selected()
	if !ok {
		return m.renderMain()
	}
	styles := m.theme.Styles()
	width := min(modalWidth, max(m.width-4, 20))
	inner := width - 6

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(service.Title, inner)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	desc := service.Description
	if strings.TrimSpace(desc) == "" {
		desc = "لا يوجد وصف لهذه الخدمة."
	}
	for _, line := range wrap(desc, inner) {
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	target := modal.PendingTarget()
	b.WriteString(styles.MutedText.Render("الوجهة: "))
	if target == session.UnknownTarget {
		b.WriteString(styles.WarningText.Render(target))
	} else {
		b.WriteString(styles.InfoText.Render(session.Navigation{Target: target}.Fragment()))
	}
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	b.WriteString(keyStyle.Render("enter") + styles.MutedText.Render(" انتقال   "))
	b.WriteString(keyStyle.Render("esc") + styles.MutedText.Render(" إغلاق"))

	box := styles.Modal.Width(width).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
