package otp

import (
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum length", MinLength, false},
		{"default length", DefaultLength, false},
		{"maximum length", MaxLength, false},
		{"too short", MinLength - 1, true},
		{"too long", MaxLength + 1, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Generate(tt.length)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Generate(%d) expected error, got %q", tt.length, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate(%d) unexpected error: %v", tt.length, err)
			}
			if len(code) != tt.length {
				t.Errorf("Generate(%d) returned %q of length %d", tt.length, code, len(code))
			}
			if !regexp.MustCompile(`^\d+$`).MatchString(code) {
				t.Errorf("Generate(%d) returned non-numeric code %q", tt.length, code)
			}
		})
	}
}

func TestHashVerify(t *testing.T) {
	code, err := GenerateDefault()
	if err != nil {
		t.Fatalf("GenerateDefault: %v", err)
	}

	hash := Hash(code)

	if err := Verify(hash, code); err != nil {
		t.Errorf("Verify with matching code: %v", err)
	}
	if err := Verify(hash, "  "+code+"  "); err != nil {
		t.Errorf("Verify should trim whitespace: %v", err)
	}
	if err := Verify(hash, "000000"); err != ErrMismatch {
		if err := Verify(hash, "999999"); err != ErrMismatch {
			t.Error("Verify with wrong code should return ErrMismatch")
		}
	}
}

func TestGenerateAlphanumeric(t *testing.T) {
	code, err := GenerateAlphanumeric(8)
	if err != nil {
		t.Fatalf("GenerateAlphanumeric: %v", err)
	}
	if len(code) != 8 {
		t.Errorf("expected 8 characters, got %d", len(code))
	}
	// Ambiguous characters are excluded from the charset
	if regexp.MustCompile(`[0OI1L]`).MatchString(code) {
		t.Errorf("code %q contains ambiguous characters", code)
	}

	if _, err := GenerateAlphanumeric(0); err == nil {
		t.Error("expected error for zero length")
	}
}

func TestGenerateHex(t *testing.T) {
	s, err := GenerateHex(16)
	if err != nil {
		t.Fatalf("GenerateHex: %v", err)
	}
	if len(s) != 32 {
		t.Errorf("expected 32 hex characters, got %d", len(s))
	}
}
