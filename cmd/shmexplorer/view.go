package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the split layout: segment list on the left, hex view of the
// selected segment on the right, status bar underneath.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := headerStyle.Render("shmexplorer")

	list := m.renderList()
	hex := m.renderHex()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, hex)

	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderList() string {
	style := paneStyle
	if m.focus == paneList {
		style = activePaneStyle
	}

	_, height := m.hexPaneSize()
	var lines []string
	if len(m.segments) == 0 {
		lines = append(lines, listSizeStyle.Render("(no segments)"))
	}
	for i, e := range m.segments {
		name := truncate(e.Name, listPaneWidth-10)
		line := fmt.Sprintf("%-*s %7s", listPaneWidth-10, name, formatSize(e.Size))
		if i == m.cursor {
			line = listSelectedStyle.Render(line)
		} else if e.Name == m.selected {
			line = helpStyle.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	return style.Width(listPaneWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHex() string {
	style := paneStyle
	if m.focus == paneHex {
		style = activePaneStyle
	}

	if m.selected == "" {
		width, height := m.hexPaneSize()
		empty := lipgloss.Place(width, height+1, lipgloss.Center, lipgloss.Center,
			listSizeStyle.Render("Select a segment and press Enter"))
		return style.Render(empty)
	}

	summary := m.renderArenaSummary()
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, summary, m.hex.View()))
}

func (m Model) renderArenaSummary() string {
	if !m.stats.Present {
		return arenaAbsentStyle.Render("no arena: " + truncate(m.stats.Detail, 60))
	}
	pct := 0.0
	if m.stats.Capacity > 0 {
		pct = 100 * float64(m.stats.Used) / float64(m.stats.Capacity)
	}
	return arenaPresentStyle.Render(fmt.Sprintf(
		"arena: %d / %d bytes used (%.1f%%)", m.stats.Used, m.stats.Capacity, pct))
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return statusStyle.Render(errorStyle.Render("Error: " + m.err.Error()))
	}

	left := fmt.Sprintf("%d segment(s)", len(m.segments))
	if m.selected != "" {
		left += "  " + m.selected
	}
	if m.status != "" {
		left += "  " + m.status
	}
	right := helpStyle.Render("tab: switch  enter: open  r: rescan  ?: help  q: quit")
	return statusStyle.Render(left + "  " + right)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"↑/k, ↓/j", "Move selection / scroll"},
		{"Enter, →/l", "Open selected segment"},
		{"←/h, Esc", "Back to segment list"},
		{"g / G", "Jump to top / bottom"},
		{"Tab", "Switch pane focus"},
		{"r", "Rescan the namespace"},
		{"q", "Quit"},
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render("shmexplorer keys"))
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.WriteString(helpKeyStyle.Render(r[0]))
		sb.WriteString(helpDescStyle.Render(r[1]))
		sb.WriteByte('\n')
	}
	sb.WriteString("\nPress any key to close.")
	return sb.String()
}
