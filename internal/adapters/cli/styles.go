package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette of the journal.
var (
	Indigo     = lipgloss.Color("#4B0082")
	AliceBlue  = lipgloss.Color("#F0F8FF")
	Purple     = lipgloss.Color("#810081")
	DarkGreen  = lipgloss.Color("#006400")
	Orange     = lipgloss.Color("#FFA500")
	ErrorRed   = lipgloss.Color("#B22222")
	SubtleGray = lipgloss.Color("#6C6C6C")
)

// separatorWidth is the dash rule closing every history entry.
const separatorWidth = 40

// styles are bound to the renderer of the shell's output so colors are
// dropped when writing to a file or pipe.
type styles struct {
	header    lipgloss.Style
	label     lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	info      lipgloss.Style
	separator lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		header:    r.NewStyle().Bold(true).Foreground(Indigo).Background(AliceBlue),
		label:     r.NewStyle().Foreground(Purple),
		success:   r.NewStyle().Foreground(DarkGreen),
		failure:   r.NewStyle().Foreground(ErrorRed),
		info:      r.NewStyle().Foreground(Orange),
		separator: r.NewStyle().Foreground(SubtleGray),
	}
}
