package commands

import (
	"fmt"
	"io"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const lineWidth = 59

// Printer writes uniformly formatted CLI output
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer on w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints a titled block header
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.w)
	p.DoubleSeparator()
	fmt.Fprintf(p.w, "  %s\n", title)
	p.Separator()
}

// Separator prints a visual separator
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, strings.Repeat("─", lineWidth))
}

// DoubleSeparator prints a double-line separator
func (p *Printer) DoubleSeparator() {
	fmt.Fprintln(p.w, strings.Repeat("═", lineWidth))
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	fmt.Fprintf(p.w, "⚠️  %s\n", message)
}

// Success prints a success message
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.w, "✅ %s\n", message)
}

// Error prints an error message
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.w, "❌ %s\n", message)
}

// Info prints an info message
func (p *Printer) Info(message string) {
	fmt.Fprintf(p.w, "ℹ️  %s\n", message)
}

// TableHeader prints a table header
func (p *Printer) TableHeader(columns []string, widths []int) {
	p.TableRow(columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(p.w, strings.Repeat("─", totalWidth))
}

// TableRow prints a table row
func (p *Printer) TableRow(values []string, widths []int) {
	for i, val := range values {
		fmt.Fprintf(p.w, "%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(p.w, "  ")
		}
	}
	fmt.Fprintln(p.w)
}

// KeyValue prints a key-value pair
func (p *Printer) KeyValue(key string, value string, keyWidth int) {
	fmt.Fprintf(p.w, "   %-*s : %s\n", keyWidth, key, value)
}
