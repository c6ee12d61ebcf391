package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/evdef/def"
)

var (
	definitionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	pascalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	parameterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	typeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unknownStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Text writes defs as a styled, human-oriented listing: each definition with
// its generated type name, then one aligned line per parameter.
func Text(w io.Writer, defs def.Definitions) error {
	var b strings.Builder

	for _, d := range defs {
		b.WriteString(definitionStyle.Render(d.Name))
		b.WriteByte(' ')
		b.WriteString(pascalStyle.Render(d.PascalName()))
		b.WriteByte('\n')

		width := 0
		for _, p := range d.Parameters {
			width = max(width, lipgloss.Width(p.Name))
		}

		for _, p := range d.Parameters {
			b.WriteString("  ")
			b.WriteString(parameterStyle.Render(p.Name))
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p.Name)+2))

			if p.Typed() {
				b.WriteString(typeStyle.Render(p.Type))
			} else {
				b.WriteString(unknownStyle.Render(p.Type))
			}

			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
