// Package console provides the terminal frontend: line input, word
// wrapping, and output.
package console

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWrapWidth is the column width used for game output.
const DefaultWrapWidth = 70

// Wrap modes.
const (
	WrapClassic = "classic"
	WrapReflow  = "reflow"
)

// WrapFunc wraps text to width columns.
type WrapFunc func(text string, width int) string

// WrapperFor returns the wrap function for the named mode.
//
// Postcondition: Returns a non-nil WrapFunc, or an error for an unknown mode.
func WrapperFor(mode string) (WrapFunc, error) {
	switch mode {
	case WrapClassic, "":
		return Wrap, nil
	case WrapReflow:
		return Reflow, nil
	default:
		return nil, fmt.Errorf("unknown wrap mode %q", mode)
	}
}

// Wrap breaks text into lines of at most width characters where it can.
// While the remaining text is at least width long:
//
//	(a) a newline before column width ends the line there and is kept;
//	(b) a space exactly at column width ends the line and is consumed;
//	(c) otherwise the last space before column width ends the line;
//	(d) with no space in that window, the first space anywhere does;
//	(e) with no space at all, the rest is emitted unbroken.
//
// A remainder shorter than width is emitted as-is. Columns count runes.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	s := []rune(text)
	var out strings.Builder
	for len(s) >= width {
		if nl := indexRune(s, '\n'); nl >= 0 && nl < width {
			out.WriteString(string(s[:nl+1]))
			s = s[nl+1:]
			continue
		}
		if len(s) > width && s[width] == ' ' {
			out.WriteString(string(s[:width]))
			s = s[width+1:]
			if len(s) > 0 {
				out.WriteString("\n")
			}
			continue
		}
		last := lastIndexRune(s[:width], ' ')
		if last < 0 {
			first := indexRune(s, ' ')
			if first < 0 {
				out.WriteString(string(s))
				s = nil
				continue
			}
			last = first
		}
		out.WriteString(string(s[:last]))
		s = s[last+1:]
		if len(s) > 0 {
			out.WriteString("\n")
		}
	}
	out.WriteString(string(s))
	return out.String()
}

// Reflow wraps text with muesli/reflow's word wrapper. Its output is not
// identical to Wrap: it keeps trailing spaces off lines and treats hyphens
// as break points.
func Reflow(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}
