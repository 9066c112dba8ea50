package gedcom

import (
	"fmt"
	"strings"
)

// Reasons attached to a FormatViolationError.
const (
	ReasonGrammar   = "line does not match the GEDCOM 5.5 grammar"
	ReasonLevelJump = "level is more than one higher than the previous line"
)

// FormatViolationError reports a line that breaks the GEDCOM 5.5 line grammar
// or the level-nesting rule. It always aborts the parse.
type FormatViolationError struct {
	Line   int    // 1-based line number
	Text   string // raw line, terminator included
	Reason string
}

// Error implements the error interface.
func (e *FormatViolationError) Error() string {
	return fmt.Sprintf("line %d violates GEDCOM 5.5 (%s): %q",
		e.Line, e.Reason, strings.TrimRight(e.Text, "\r\n"))
}

// WrongKindError is returned by relationship queries that receive an element
// which is not an individual record.
type WrongKindError struct {
	Pointer string
	Tag     string
}

// Error implements the error interface.
func (e *WrongKindError) Error() string {
	if e.Tag == "" && e.Pointer == "" {
		return "operation only valid for " + TagIndividual + " elements: got nil element"
	}
	return fmt.Sprintf("operation only valid for %s elements: got %s %s", TagIndividual, e.Tag, e.Pointer)
}
