package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ParseError describes an XML export that could not be decoded.
type ParseError struct {
	FilePath string // Path to the export
	Line     int    // Line number (0 if unknown)
	Message  string // Primary error message
	Hint     string // Actionable suggestion
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("xml error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// wrapDecodeError converts decoder errors to ParseError with line numbers.
func wrapDecodeError(err error, filePath string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Re-export the module from Forms Builder; the file looks truncated or hand-edited.",
		}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{
			FilePath: filePath,
			Message:  "unexpected end of document",
			Hint:     "The export is truncated.",
		}
	}

	return &ParseError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "Check the encoding declared in the XML prolog.",
	}
}
