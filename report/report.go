// Package report renders decoded object files for humans.
package report

import (
	"debug/elf"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/objlink/object"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Printer writes reports and failures line by line.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a Printer. With styled set, output carries ANSI
// styling; the text is the same either way.
func NewPrinter(w io.Writer, styled bool) *Printer {
	return &Printer{w: w, styled: styled}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Summary describes the header of a decoded file in one line.
func Summary(rep *object.Report) string {
	return fmt.Sprintf("%s %s %s %s, %d sections",
		rep.Ident.Class,
		rep.Ident.Data,
		elf.Type(rep.Header.Type),
		elf.Machine(rep.Header.Machine),
		len(rep.Sections))
}

// Report writes the header summary and every section in table order.
// A diagnostic line follows each section whose name did not resolve.
func (p *Printer) Report(rep *object.Report) error {
	var b strings.Builder

	b.WriteString(p.render(helpStyle, Summary(rep)))
	b.WriteString("\n\n")
	b.WriteString(p.render(titleStyle, "--- Sections ---"))
	b.WriteByte('\n')

	for _, s := range rep.Names {
		b.WriteString(p.render(indexStyle, fmt.Sprintf("[%d]", s.Index)))
		b.WriteByte(' ')
		if s.Valid {
			b.WriteString(p.render(nameStyle, s.Name))
		} else {
			b.WriteString(p.render(invalidStyle, s.Name))
			b.WriteByte('\n')
			b.WriteString(p.render(invalidStyle, "warning: "+s.Diagnostic))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Failure writes the single diagnostic line for a failed decode.
func (p *Printer) Failure(err error) error {
	_, werr := fmt.Fprintln(p.w, p.render(errorStyle, "error: "+err.Error()))
	return werr
}
