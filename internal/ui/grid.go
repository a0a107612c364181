package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/musaed/internal/gie"
)

// emptyGridText is shown in place of a grid with no cards.
const emptyGridText = "لا توجد خدمات مطابقة."

// paneServices returns the cards of a grid pane.
func (m Model) paneServices(p pane) []gie.Service {
	switch p {
	case paneFavorites:
		return m.board.Favorites
	case paneSuggested:
		return m.board.Suggested
	default:
		return nil
	}
}

// gridColumns returns how many cards fit side by side.
func (m Model) gridColumns() int {
	cols := (m.width + cardGap) / (cardWidth + cardGap)
	return min(max(cols, minGridColumns), maxGridColumns)
}

// moveCursor moves the focused grid's cursor by delta, staying in range.
func (m *Model) moveCursor(delta int) {
	n := len(m.paneServices(m.focus))
	if n == 0 || m.focus == paneInput {
		return
	}
	next := m.cursors[m.focus] + delta
	m.cursors[m.focus] = min(max(next, 0), n-1)
}

// clampCursors keeps every cursor on a card after the grids change.
func (m *Model) clampCursors() {
	for _, p := range []pane{paneFavorites, paneSuggested} {
		n := len(m.paneServices(p))
		m.cursors[p] = min(max(m.cursors[p], 0), max(n-1, 0))
	}
}

// renderSection renders a titled grid.
func (m Model) renderSection(title string, p pane, services []gie.Service, meta string) string {
	styles := m.theme.Styles()
	heading := styles.AccentText.Bold(true).Render(title)
	if m.focus == p {
		heading = styles.WarningText.Bold(true).Render("▸ " + title)
	}
	if meta != "" {
		heading += "  " + meta
	}
	return heading + "\n" + m.renderGrid(p, services)
}

// renderGrid lays services out in rows of cards.
func (m Model) renderGrid(p pane, services []gie.Service) string {
	styles := m.theme.Styles()
	if len(services) == 0 {
		return styles.FaintText.Italic(true).Render("  " + emptyGridText)
	}

	cols := m.gridColumns()
	var rows []string
	for start := 0; start < len(services); start += cols {
		end := min(start+cols, len(services))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			selected := m.focus == p && m.cursors[p] == i
			cards = append(cards, m.renderCard(services[i], selected))
			if i < end-1 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one service. Compact cards and narrow terminals show
// the title only.
func (m Model) renderCard(s gie.Service, selected bool) string {
	styles := m.theme.Styles()
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	inner := cardWidth - 4

	lines := []string{lipgloss.NewStyle().Bold(true).Render(truncate(s.Title, inner))}
	if !m.compact && m.width >= LayoutCompactWidth {
		desc := wrap(s.Description, inner)
		for i := 0; i < cardDescLines; i++ {
			line := ""
			if i < len(desc) {
				line = desc[i]
				if i == cardDescLines-1 && len(desc) > cardDescLines {
					line = truncate(line+" "+desc[i+1], inner)
				}
			}
			lines = append(lines, padRight(truncate(line, inner), inner))
		}
	}
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}
