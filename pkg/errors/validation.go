package errors

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// pointerRegex matches the inside of a GEDCOM cross-reference pointer.
var pointerRegex = regexp.MustCompile(`^[A-Za-z0-9_][^@\s]{0,19}$`)

// NormalizePointer accepts a pointer with or without its '@' delimiters
// ("I1" or "@I1@") and returns the delimited form.
//
// GEDCOM 5.5 limits pointers to 20 characters between the delimiters. The
// first character must be alphanumeric or an underscore, and pointers cannot
// contain whitespace or further '@' characters.
func NormalizePointer(ptr string) (string, error) {
	inner := strings.TrimSpace(ptr)
	if inner == "" {
		return "", New(ErrCodeInvalidPointer, "pointer cannot be empty")
	}
	if strings.HasPrefix(inner, "@") && strings.HasSuffix(inner, "@") && len(inner) > 1 {
		inner = inner[1 : len(inner)-1]
	}
	if !pointerRegex.MatchString(inner) {
		return "", New(ErrCodeInvalidPointer, "invalid pointer: %q", ptr)
	}
	return "@" + inner + "@", nil
}

// ValidateDocumentID checks that id is a UUID as issued by the document
// stores.
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "document id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidID, err, "invalid document id: %q", id)
	}
	return nil
}

// ValidateSearchQuery validates a free-text search query.
//
// Validation rules:
//   - Query cannot be empty after trimming
//   - Maximum length of 200 characters
//   - No control characters
func ValidateSearchQuery(q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return New(ErrCodeInvalidInput, "search query cannot be empty")
	}
	if len(q) > 200 {
		return New(ErrCodeInvalidInput, "search query too long (max 200 characters)")
	}
	for _, r := range q {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "search query contains invalid control characters")
		}
	}
	return nil
}

// ValidateFilename validates the name of an uploaded file.
// It must be a simple basename without path components.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "filename too long (max 255 characters)")
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}
	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid characters")
		}
	}
	return nil
}
