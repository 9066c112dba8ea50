package gedcom

import (
	"regexp"
	"strconv"
	"strings"
)

// byteOrderMark is stripped from the start of the first line of a stream.
const byteOrderMark = "\uFEFF"

// A GEDCOM 5.5 line is: level + ' ' + [pointer + ' '] + tag + [' ' + value] + terminator.
// Levels have no leading zeros, pointers are flanked by '@'.
var (
	lineRE     = regexp.MustCompile(`^(0|[1-9][0-9]*) (@[^@]+@ )?([A-Za-z0-9_]+)( [^\n\r]*)?([\r\n]{1,2})$`)
	lastLineRE = regexp.MustCompile(`^(0|[1-9][0-9]*) (@[^@]+@ )?([A-Za-z0-9_]+)( [^\n\r]*)?$`)
	freeTextRE = regexp.MustCompile(`^([^\n\r]*)([\r\n]{1,2})$`)
)

// Recovery records which lenient fallback, if any, produced a [Line].
type Recovery int

const (
	RecoveryNone Recovery = iota
	// RecoveryMissingTerminator: a well-formed line without end-of-line,
	// typically the last line of a file.
	RecoveryMissingTerminator
	// RecoveryContinuation: a bare text line, turned into a CONC/CONT
	// continuation of the previous element.
	RecoveryContinuation
)

func (r Recovery) String() string {
	switch r {
	case RecoveryMissingTerminator:
		return "missing terminator"
	case RecoveryContinuation:
		return "continuation"
	default:
		return "none"
	}
}

// Line is one GEDCOM line split into its fields.
type Line struct {
	Level      int
	Pointer    string // including the '@' delimiters, "" when absent
	Tag        string
	Value      string
	Terminator string
	Recovery   Recovery
}

// ParseLine splits one raw line (terminator included) into its fields.
//
// In strict mode a line that does not match the grammar is a
// [FormatViolationError]. Otherwise two quirks of real-world exports are
// recovered: a final line without a terminator, and text fields with raw
// line breaks, where the orphaned text becomes a continuation of last.
// last may be nil, in which case it stands for the document root.
//
// ParseLine does not check level nesting; that is the tree builder's job.
func ParseLine(number int, raw string, last *Element, strict bool) (Line, error) {
	text := raw

	if m := lineRE.FindStringSubmatch(text); m != nil {
		return fieldsOf(number, raw, m, m[5], RecoveryNone)
	}
	if strict {
		return Line{}, &FormatViolationError{Line: number, Text: raw, Reason: ReasonGrammar}
	}

	if m := lastLineRE.FindStringSubmatch(text); m != nil {
		return fieldsOf(number, raw, m, "\n", RecoveryMissingTerminator)
	}

	if m := freeTextRE.FindStringSubmatch(text); m != nil {
		level, tag := -1, ""
		if last != nil {
			level, tag = last.level, last.tag
		}
		if tag != TagContinued && tag != TagConcatenation {
			level++
			tag = TagConcatenation
		}
		return Line{
			Level:      level,
			Tag:        tag,
			Value:      strings.TrimSpace(m[1]),
			Terminator: m[2],
			Recovery:   RecoveryContinuation,
		}, nil
	}

	return Line{}, &FormatViolationError{Line: number, Text: raw, Reason: ReasonGrammar}
}

func fieldsOf(number int, raw string, m []string, terminator string, rec Recovery) (Line, error) {
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return Line{}, &FormatViolationError{Line: number, Text: raw, Reason: ReasonGrammar}
	}
	return Line{
		Level:      level,
		Pointer:    strings.TrimSuffix(m[2], " "),
		Tag:        m[3],
		Value:      strings.TrimPrefix(m[4], " "),
		Terminator: terminator,
		Recovery:   rec,
	}, nil
}
