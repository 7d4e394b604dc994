package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cardHeight  = 7
	twoColWidth = 100
)

func (m *Model) View() string {
	sections := []string{m.headerView(), m.searchView(), ""}

	if m.mode == modeAdd {
		sections = append(sections, m.form.View())
	} else {
		sections = append(sections, m.listView())
	}

	if m.toast != nil {
		sections = append(sections, "", m.toast.View())
	}
	sections = append(sections, "", helpStyle.Render(m.help.View(m.keys.help(m.mode))))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) headerView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🔑 Password Manager"),
		subtitleStyle.Render("Keep your passwords secure and organized"),
	)
}

func (m *Model) searchView() string {
	if m.mode == modeSearch {
		return searchFocusedStyle.Render(m.search.View())
	}
	return searchStyle.Render(m.search.View())
}

func (m *Model) listView() string {
	if len(m.visible) == 0 {
		hint := "Get started by adding your first password"
		if strings.TrimSpace(m.search.Value()) != "" {
			hint = "Try adjusting your search"
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			emptyTitleStyle.Render("No passwords found"),
			subtitleStyle.Render(hint),
		)
	}

	cols := 1
	if m.width >= twoColWidth {
		cols = 2
	}

	now := m.now()
	cards := make([]string, len(m.visible))
	for i, c := range m.visible {
		cards[i] = renderCard(c, cardOptions{
			revealed:   m.revealed[c.ID],
			selected:   i == m.cursor,
			mask:       m.opts.MaskChar,
			dateLayout: m.opts.DateLayout,
			now:        now,
		})
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	first, last := visibleRows(len(rows), m.cursor/cols, m.rowsFit())
	return lipgloss.JoinVertical(lipgloss.Left, rows[first:last]...)
}

// rowsFit is the number of card rows that fit below the header, or 0 when
// the terminal size is not known yet.
func (m *Model) rowsFit() int {
	if m.height == 0 {
		return 0
	}
	const chrome = 14
	return max((m.height-chrome)/cardHeight, 1)
}

// visibleRows returns the [first, last) window of rows keeping selected in view.
func visibleRows(total, selected, fit int) (int, int) {
	if fit <= 0 || total <= fit {
		return 0, total
	}
	first := min(max(selected-fit/2, 0), total-fit)
	return first, first + fit
}
