package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/musaed/internal/logtail"
)

// resizeLogView fits the log pane to a third of the screen.
func (m *Model) resizeLogView() {
	m.logView.Width = max(m.width-4, 10)
	m.logView.Height = max(m.height/3, logPaneMinHeight)
}

// handleLogLines replaces the log pane content, staying pinned to the bottom
// when it already was.
func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logErr = msg.err
	if msg.err != nil {
		return
	}
	follow := m.logView.AtBottom() || m.logView.TotalLineCount() == 0
	m.logView.SetContent(m.renderLogContent(msg.entries))
	if follow {
		m.logView.GotoBottom()
	}
}

// renderLogContent colours entries by level.
func (m Model) renderLogContent(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	if len(entries) == 0 {
		return styles.FaintText.Render("السجل فارغ.")
	}
	width := max(m.logView.Width, 10)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		if e.Stamp != "" {
			b.WriteString(styles.FaintText.Render(e.Stamp[len("2006/01/02 "):]))
			b.WriteString(" ")
		}
		b.WriteString(m.levelStyle(e.Level, styles).Render(truncate(e.Message, width-10)))
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) levelStyle(level logtail.Level, styles Styles) lipgloss.Style {
	switch level {
	case logtail.LevelWarn:
		return styles.WarningText
	case logtail.LevelError:
		return styles.DangerText
	default:
		return styles.Text
	}
}

// renderLogs renders the log pane under the grids.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("السجل") + "  " +
		styles.FaintText.Render(truncateMiddle(m.logPath, 50))

	body := m.logView.View()
	if m.logErr != nil {
		body = styles.DangerText.Render("تعذرت قراءة السجل: " + m.logErr.Error())
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(max(m.width-2, 10)).
		Render(body)
	return title + "\n" + box
}
