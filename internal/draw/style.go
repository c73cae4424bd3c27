package draw

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette renders coloured text for one output stream. Each SSH session
// gets its own so colour profiles never leak between clients.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

type styleKey struct {
	color string
	bold  bool
}

// NewPalette creates a palette writing for w with the given colour profile.
func NewPalette(w io.Writer, profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Palette{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

// Style returns the cached style for a colour.
func (p *Palette) Style(color string, bold bool) lipgloss.Style {
	key := styleKey{color, bold}
	if s, ok := p.styles[key]; ok {
		return s
	}
	s := p.renderer.NewStyle().Bold(bold)
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	p.styles[key] = s
	return s
}

// Paint colours s. Blank runs and unstyled text pass through untouched.
func (p *Palette) Paint(s, color string, bold bool) string {
	if (color == "" && !bold) || strings.TrimSpace(s) == "" {
		return s
	}
	return p.Style(color, bold).Render(s)
}

// Box frames content in a rounded border.
func (p *Palette) Box(content, borderColor string, width int) string {
	return p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 3).
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

// Overlay writes a multi-line block centred on the frame.
func Overlay(cw *ChunkWriter, cols, rows int, block string) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := max((cols-width)/2+1, 1)
	row := max((rows-len(lines))/2+1, 1)
	for i, line := range lines {
		cw.WriteAt(col, row+i, line)
	}
}
