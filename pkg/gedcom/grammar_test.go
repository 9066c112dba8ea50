package gedcom

import (
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		strict bool
		want   Line
	}{
		{
			name: "record with pointer",
			raw:  "0 @I1@ INDI\n",
			want: Line{Level: 0, Pointer: "@I1@", Tag: "INDI", Terminator: "\n"},
		},
		{
			name: "value",
			raw:  "1 NAME John /Doe/\n",
			want: Line{Level: 1, Tag: "NAME", Value: "John /Doe/", Terminator: "\n"},
		},
		{
			name: "crlf terminator",
			raw:  "2 DATE 1 JAN 1900\r\n",
			want: Line{Level: 2, Tag: "DATE", Value: "1 JAN 1900", Terminator: "\r\n"},
		},
		{
			name: "only one leading space is removed",
			raw:  "1 NOTE   indented \n",
			want: Line{Level: 1, Tag: "NOTE", Value: "  indented ", Terminator: "\n"},
		},
		{
			name: "multi digit level",
			raw:  "12 _CUSTOM x\n",
			want: Line{Level: 12, Tag: "_CUSTOM", Value: "x", Terminator: "\n"},
		},
		{
			name: "byte order mark",
			raw:  "\uFEFF0 HEAD\n",
			want: Line{Level: 0, Tag: "HEAD", Terminator: "\n"},
		},
		{
			name: "pointer value",
			raw:  "1 FAMS @F1@\n",
			want: Line{Level: 1, Tag: "FAMS", Value: "@F1@", Terminator: "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strict := range []bool{true, false} {
				got, err := ParseLine(1, tt.raw, nil, strict)
				if err != nil {
					t.Fatalf("strict=%v: unexpected error: %v", strict, err)
				}
				if got != tt.want {
					t.Errorf("strict=%v: got %+v, want %+v", strict, got, tt.want)
				}
			}
		})
	}
}

func TestParseLineStrictRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"leading zero level", "01 NAME x\n"},
		{"missing terminator", "0 TRLR"},
		{"malformed pointer", "1 BAD@POINTER TAG value\n"},
		{"free text", "continued text\n"},
		{"empty line", "\n"},
		{"tag with dash", "1 BAD-TAG\n"},
		{"negative level", "-1 HEAD\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(7, tt.raw, nil, true)
			var fv *FormatViolationError
			if !errors.As(err, &fv) {
				t.Fatalf("expected FormatViolationError, got %v", err)
			}
			if fv.Line != 7 || fv.Text != tt.raw || fv.Reason != ReasonGrammar {
				t.Errorf("got %+v", fv)
			}
		})
	}
}

func TestParseLineRecovery(t *testing.T) {
	note := NewElement(1, "", TagNote, "first", "\n")
	conc := NewElement(2, "", TagConcatenation, "second", "\n")
	cont := NewElement(2, "", TagContinued, "third", "\n")

	tests := []struct {
		name string
		raw  string
		last *Element
		want Line
	}{
		{
			name: "missing terminator",
			raw:  "0 TRLR",
			want: Line{Level: 0, Tag: "TRLR", Terminator: "\n", Recovery: RecoveryMissingTerminator},
		},
		{
			name: "free text below a value",
			raw:  "  orphaned text \n",
			last: note,
			want: Line{Level: 2, Tag: TagConcatenation, Value: "orphaned text", Terminator: "\n", Recovery: RecoveryContinuation},
		},
		{
			name: "free text after CONC keeps level and tag",
			raw:  "more\r\n",
			last: conc,
			want: Line{Level: 2, Tag: TagConcatenation, Value: "more", Terminator: "\r\n", Recovery: RecoveryContinuation},
		},
		{
			name: "free text after CONT keeps level and tag",
			raw:  "more\n",
			last: cont,
			want: Line{Level: 2, Tag: TagContinued, Value: "more", Terminator: "\n", Recovery: RecoveryContinuation},
		},
		{
			name: "malformed pointer becomes continuation",
			raw:  "1 BAD@POINTER TAG value\n",
			last: note,
			want: Line{Level: 2, Tag: TagConcatenation, Value: "1 BAD@POINTER TAG value", Terminator: "\n", Recovery: RecoveryContinuation},
		},
		{
			name: "free text with no previous element",
			raw:  "text\n",
			want: Line{Level: 0, Tag: TagConcatenation, Value: "text", Terminator: "\n", Recovery: RecoveryContinuation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(3, tt.raw, tt.last, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLineLenientUnrecoverable(t *testing.T) {
	// Free text without a terminator matches neither fallback.
	_, err := ParseLine(9, "dangling text", nil, false)
	var fv *FormatViolationError
	if !errors.As(err, &fv) {
		t.Fatalf("expected FormatViolationError, got %v", err)
	}
	if fv.Line != 9 {
		t.Errorf("Line = %d, want 9", fv.Line)
	}
}

func TestRecoveryString(t *testing.T) {
	if RecoveryNone.String() != "none" || RecoveryContinuation.String() != "continuation" {
		t.Error("unexpected Recovery names")
	}
}
