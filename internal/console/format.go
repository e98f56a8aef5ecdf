package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// Printer writes formatted shell output to w.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section prints a section header
func (p *Printer) Section(title string) {
	_, _ = headerColor.Fprintf(p.w, "▸ %s\n", title)
}

// Success prints a success message with a checkmark
func (p *Printer) Success(msg string) {
	_, _ = successColor.Fprintf(p.w, "✓ %s\n", msg)
}

// Warning prints a warning message with a warning symbol
func (p *Printer) Warning(msg string) {
	_, _ = warningColor.Fprintf(p.w, "⚠ %s\n", msg)
}

// Error prints an error message. The shell keeps a single output stream.
func (p *Printer) Error(msg string) {
	_, _ = errorColor.Fprintf(p.w, "✗ %s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, msg)
}

// LabelValue prints a label-value pair with proper formatting
func (p *Printer) LabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.w, "  %s: ", label)
	_, _ = valueColor.Fprintln(p.w, value)
}

// List prints items with bullet points
func (p *Printer) List(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(p.w, "%s• %s\n", indentStr, item)
	}
}

// EmptyState prints a message when there's no data to show
func (p *Printer) EmptyState(msg string) {
	_, _ = dimColor.Fprintf(p.w, "  %s\n", msg)
}

// Table prints rows under headers with padded columns.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len([]rune(header))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len([]rune(cell)) > colWidths[i] {
				colWidths[i] = len([]rune(cell))
			}
		}
	}

	fmt.Fprint(p.w, "  ")
	for i, header := range headers {
		if i > 0 {
			fmt.Fprint(p.w, "  ")
		}
		_, _ = headerColor.Fprintf(p.w, "%-*s", colWidths[i], header)
	}
	fmt.Fprintln(p.w)

	fmt.Fprint(p.w, "  ")
	for i, width := range colWidths {
		if i > 0 {
			fmt.Fprint(p.w, "  ")
		}
		fmt.Fprint(p.w, strings.Repeat("-", width))
	}
	fmt.Fprintln(p.w)

	for _, row := range rows {
		fmt.Fprint(p.w, "  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				fmt.Fprint(p.w, "  ")
			}
			_, _ = valueColor.Fprintf(p.w, "%-*s", colWidths[i], cell)
		}
		fmt.Fprintln(p.w)
	}
}

// Count formats a count with the right noun.
func Count(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
