package command

import (
	"strings"
	"unicode"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Verb is the first word as typed.
	Verb string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command, inner spacing preserved.
	RawArgs string
}

// Empty reports whether the line held no words at all.
func (p ParseResult) Empty() bool {
	return p.Command == ""
}

// Parse splits a text line into a command and arguments on any whitespace.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty and Args is nil.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	// Split at the first whitespace for the command word
	spaceIdx := strings.IndexFunc(line, unicode.IsSpace)
	if spaceIdx < 0 {
		return ParseResult{
			Command: strings.ToLower(line),
			Verb:    line,
		}
	}

	cmd := strings.ToLower(line[:spaceIdx])
	rest := strings.TrimSpace(line[spaceIdx:])

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	return ParseResult{
		Command: cmd,
		Verb:    line[:spaceIdx],
		Args:    args,
		RawArgs: rest,
	}
}
