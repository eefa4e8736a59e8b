package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/joshuapare/shmkit/cmd/shmexplorer/logger"
	"github.com/joshuapare/shmkit/internal/hexdump"
	"github.com/joshuapare/shmkit/shm"
	"github.com/joshuapare/shmkit/shm/arena"
)

// pane identifies which side of the split layout has focus.
type pane int

const (
	paneList pane = iota
	paneHex
)

// segmentEntry is one row of the segment list.
type segmentEntry struct {
	Name string
	Size int64
}

// arenaStats is the decoded control-block summary shown above the hex pane.
// Present is false when the selected segment holds no arena.
type arenaStats struct {
	Present  bool
	Used     uint64
	Capacity uint64
	Detail   string
}

// Model holds the full TUI state: the segment list on the left, the hex view
// of the selected segment on the right.
type Model struct {
	segments []segmentEntry
	cursor   int
	focus    pane

	selected string
	seg      *shm.Segment
	stats    arenaStats
	hex      viewport.Model

	width  int
	height int
	ready  bool

	showHelp bool
	err      error
	status   string
}

// NewModel creates the initial model. Segments load in Init.
func NewModel() Model {
	return Model{focus: paneList}
}

// Init kicks off the first segment scan.
func (m Model) Init() tea.Cmd {
	return loadSegments
}

// Close releases the currently mapped segment, if any.
func (m Model) Close() error {
	if m.seg != nil {
		return m.seg.Close()
	}
	return nil
}

// Messages

type segmentsLoadedMsg struct {
	entries []segmentEntry
}

type segmentOpenedMsg struct {
	name    string
	seg     *shm.Segment
	stats   arenaStats
	content string
}

type errMsg struct {
	err error
}

// Commands

// loadSegments scans the namespace and sizes each entry.
func loadSegments() tea.Msg {
	names, err := shm.List()
	if err != nil {
		return errMsg{err}
	}
	entries := make([]segmentEntry, 0, len(names))
	for _, name := range names {
		seg, err := shm.Open(name, shm.OpenOnly, 0)
		if err != nil {
			logger.Segment(name).Warn("skipping", "error", err)
			continue
		}
		entries = append(entries, segmentEntry{Name: name, Size: seg.Size()})
		seg.Close()
	}
	logger.Info("scanned namespace", "segments", len(entries))
	return segmentsLoadedMsg{entries: entries}
}

// openSegment maps the named segment and renders its hex view.
func openSegment(name string) tea.Cmd {
	return func() tea.Msg {
		seg, err := shm.Open(name, shm.OpenOnly, 0)
		if err != nil {
			return errMsg{err}
		}

		stats := arenaStats{}
		if a, err := arena.Attach(seg.Bytes()); err == nil {
			stats = arenaStats{
				Present:  true,
				Used:     uint64(a.Used()),
				Capacity: uint64(a.Capacity()),
			}
		} else {
			stats.Detail = err.Error()
		}

		data := seg.Bytes()
		if int64(len(data)) > maxHexBytes {
			data = data[:maxHexBytes]
		}
		var sb strings.Builder
		if err := hexdump.WriteFolded(&sb, 0, data); err != nil {
			seg.Close()
			return errMsg{err}
		}

		logger.Segment(name).Info("opened",
			"size", seg.Size(), "arena", stats.Present)
		return segmentOpenedMsg{name: name, seg: seg, stats: stats, content: sb.String()}
	}
}

// maxHexBytes bounds how much of a segment the hex pane renders. Folding
// handles sparse regions; this handles genuinely huge dense ones.
const maxHexBytes = 4 << 20
