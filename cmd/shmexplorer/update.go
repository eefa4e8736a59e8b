package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/joshuapare/shmkit/cmd/shmexplorer/logger"
)

// Update routes messages to the focused pane and handles global keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		hexWidth, hexHeight := m.hexPaneSize()
		if !m.ready {
			m.hex = viewport.New(hexWidth, hexHeight)
			m.ready = true
		} else {
			m.hex.Width = hexWidth
			m.hex.Height = hexHeight
		}
		return m, nil

	case segmentsLoadedMsg:
		m.segments = msg.entries
		if m.cursor >= len(m.segments) {
			m.cursor = len(m.segments) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.err = nil
		m.status = ""
		return m, nil

	case segmentOpenedMsg:
		// Swap mappings; the old one stays valid until closed.
		if m.seg != nil {
			m.seg.Close()
		}
		m.selected = msg.name
		m.seg = msg.seg
		m.stats = msg.stats
		m.hex.SetContent(msg.content)
		m.hex.GotoTop()
		m.focus = paneHex
		m.err = nil
		return m, nil

	case errMsg:
		logger.Error("update error", "error", msg.err)
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab":
		if m.focus == paneList {
			m.focus = paneHex
		} else {
			m.focus = paneList
		}
		return m, nil
	case "r":
		m.status = "rescanning..."
		return m, loadSegments
	}

	if m.focus == paneList {
		return m.handleListKey(msg)
	}
	return m.handleHexKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.segments)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.segments) > 0 {
			m.cursor = len(m.segments) - 1
		}
	case "enter", "right", "l":
		if m.cursor < len(m.segments) {
			return m, openSegment(m.segments[m.cursor].Name)
		}
	}
	return m, nil
}

func (m Model) handleHexKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "esc":
		m.focus = paneList
		return m, nil
	case "g", "home":
		m.hex.GotoTop()
		return m, nil
	case "G", "end":
		m.hex.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.hex, cmd = m.hex.Update(msg)
	return m, cmd
}

// hexPaneSize derives the viewport dimensions from the window, leaving room
// for the header, the arena summary line, borders, and the status bar.
func (m Model) hexPaneSize() (width, height int) {
	width = m.width - listPaneWidth - 6
	if width < 20 {
		width = 20
	}
	height = m.height - 8
	if height < 5 {
		height = 5
	}
	return width, height
}
