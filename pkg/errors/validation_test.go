package errors

import (
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"digits", "1234567890", false},
		{"currency", "$1,024.50", false},
		{"unicode", "héllo 世界", false},
		{"max length", strings.Repeat("9", MaxTextLength), false},

		{"too long", strings.Repeat("9", MaxTextLength+1), true},
		{"null byte", "12\x0034", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"invalid utf8", "\xff\xfe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateText(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"digits", "0123456789", false},
		{"letters", "abcdefghijklmnopqrstuvwxyz", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "01\t2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePool(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePool(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidatePool(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("svg", "dot", "svg"); err != nil {
		t.Errorf("ValidateFormat(svg) unexpected error: %v", err)
	}
	err := ValidateFormat("png", "dot", "svg")
	if err == nil {
		t.Fatal("ValidateFormat(png) expected error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "dot, svg") {
		t.Errorf("error should list valid formats: %v", err)
	}
}
