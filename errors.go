package crossplane

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies a ParseError. Syntax errors come from the lexer and
// the parser's structural checks; the three directive kinds come from the
// analyzer.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota
	KindArguments
	KindContext
	KindUnknownDirective
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindArguments:
		return "arguments"
	case KindContext:
		return "context"
	case KindUnknownDirective:
		return "unknown directive"
	default:
		return "unknown"
	}
}

// IsDirective reports whether the kind is one of the semantic validation
// failures raised by the analyzer, as opposed to a structural syntax error.
func (k ErrorKind) IsDirective() bool {
	switch k {
	case KindArguments, KindContext, KindUnknownDirective:
		return true
	default:
		return false
	}
}

// ParseError is the error produced by every stage of the pipeline. What
// holds the bare message, File and Line locate it in the source. A Line of
// zero means the location is unknown and is left out of the rendering.
type ParseError struct {
	What string
	File string
	Line int
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s in %s", e.What, e.File)
	}
	return fmt.Sprintf("%s in %s:%d", e.What, e.File, e.Line)
}

// MarshalJSON renders the exchange-format error object: the file, the line
// and the fully rendered message.
func (e *ParseError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File  string `json:"file"`
		Line  int    `json:"line"`
		Error string `json:"error"`
	}{e.File, e.Line, e.Error()})
}

func newSyntaxErr(what, file string, line int) *ParseError {
	return &ParseError{What: what, File: file, Line: line, Kind: KindSyntax}
}

func newArgumentsErr(what, file string, line int) *ParseError {
	return &ParseError{What: what, File: file, Line: line, Kind: KindArguments}
}

func newContextErr(what, file string, line int) *ParseError {
	return &ParseError{What: what, File: file, Line: line, Kind: KindContext}
}

func newUnknownErr(what, file string, line int) *ParseError {
	return &ParseError{What: what, File: file, Line: line, Kind: KindUnknownDirective}
}
