package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryProps    Category = "props"
	CategoryConfig   Category = "config"
	CategoryStory    Category = "story"
	CategorySnapshot Category = "snapshot"
	CategoryDocs     Category = "docs"
	CategoryCLI      Category = "cli"
)

// Location represents a position in a source file such as a story YAML
// file or oxd.json.
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

// OxdError is a structured error with a code, an optional location and a
// suggestion.
type OxdError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains the source lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *OxdError) Error() string {
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
func (e *OxdError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location and reads the surrounding lines.
func (e *OxdError) WithLocation(file string, line, column int) *OxdError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, contextLines)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *OxdError) WithSuggestion(s string) *OxdError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *OxdError) WithDetail(d string) *OxdError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with formatting.
func (e *OxdError) WithDetailf(format string, args ...any) *OxdError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// Wrap wraps another error.
func (e *OxdError) Wrap(err error) *OxdError {
	e.Wrapped = err
	return e
}

// contextLines is the number of source lines shown around a location.
const contextLines = 5

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

// New creates an OxdError from a registered error code.
func New(code string) *OxdError {
	template, ok := registry[code]
	if !ok {
		return &OxdError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &OxdError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates an OxdError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *OxdError {
	return &OxdError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in an OxdError with the given code. An OxdError
// anywhere in err's chain is returned as is.
func FromError(err error, code string) *OxdError {
	if err == nil {
		return nil
	}
	var oe *OxdError
	if stderrors.As(err, &oe) {
		return oe
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first OxdError in err's chain.
func CodeOf(err error) string {
	var oe *OxdError
	if stderrors.As(err, &oe) {
		return oe.Code
	}
	return ""
}
