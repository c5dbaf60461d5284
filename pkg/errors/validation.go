package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength bounds the number of characters accepted from users.
const MaxTextLength = 256

// ValidateText validates text that is about to be animated.
//
// The validation rules are intentionally conservative:
//   - Valid UTF-8 only
//   - No control characters (they have no glyph and break cell alignment)
//   - No NUL bytes, which collide with the empty sentinel
//   - Maximum length of MaxTextLength characters
//
// Empty text is allowed: rolling to "" clears every column.
func ValidateText(s string) error {
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidInput, "text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(s); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (%d characters, max %d)", n, MaxTextLength)
	}
	for _, r := range s {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "text contains invalid control characters")
		}
	}
	return nil
}

// ValidatePool validates the characters of a character pool.
// Pools follow the same rules as text and must not be blank.
func ValidatePool(chars string) error {
	if strings.TrimSpace(chars) == "" {
		return New(ErrCodeInvalidConfig, "character pool cannot be empty")
	}
	if err := ValidateText(chars); err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid character pool %q", chars)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format %q (valid: %s)", format, strings.Join(allowed, ", "))
}
