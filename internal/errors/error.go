package errors

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryPreview Category = "preview"
	CategoryPublish Category = "publish"
)

// Location represents a position in a config or props file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// StyledError is a structured error with a code, a hint and documentation.
type StyledError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category groups errors by the tool that raised them.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location points into the file that caused the error, if any.
	Location *Location

	// Context contains the lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *StyledError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *StyledError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position and the lines around it.
func (e *StyledError) WithLocation(file string, line, column int) *StyledError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// yamlLine matches the position prefix of yaml.v3 errors.
var yamlLine = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

// WithLocationFromYAML extracts the line (and column, when present) from a
// YAML decoder error and attaches it for file.
func (e *StyledError) WithLocationFromYAML(file string, err error) *StyledError {
	if err == nil {
		return e
	}
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return e
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	if line > 0 {
		e.WithLocation(file, line, col)
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *StyledError) WithSuggestion(s string) *StyledError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *StyledError) WithDetail(d string) *StyledError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *StyledError) Wrap(err error) *StyledError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a StyledError from a registered error code.
func New(code string) *StyledError {
	template, ok := registry[code]
	if !ok {
		return &StyledError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &StyledError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new StyledError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *StyledError {
	return &StyledError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a StyledError.
func FromError(err error, code string) *StyledError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*StyledError); ok {
		return se
	}
	return New(code).Wrap(err)
}
