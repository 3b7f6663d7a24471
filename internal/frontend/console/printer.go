package console

import (
	"fmt"
	"io"
)

// Printer writes wrapped game text to an output stream.
type Printer struct {
	w      io.Writer
	width  int
	wrap   WrapFunc
	prompt string
}

// NewPrinter creates a Printer.
//
// Precondition: w and wrap must be non-nil.
func NewPrinter(w io.Writer, width int, wrap WrapFunc, prompt string) *Printer {
	return &Printer{
		w:      w,
		width:  width,
		wrap:   wrap,
		prompt: prompt,
	}
}

// Print writes text wrapped to the printer's width.
func (p *Printer) Print(text string) error {
	if _, err := io.WriteString(p.w, p.wrap(text, p.width)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Prompt writes the input prompt, unwrapped.
func (p *Printer) Prompt() error {
	if _, err := io.WriteString(p.w, p.prompt); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}
