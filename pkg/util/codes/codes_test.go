package codes

import (
	"regexp"
	"testing"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]+$`)

func TestGenerateResetToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tok, err := GenerateResetToken()
		if err != nil {
			t.Fatalf("GenerateResetToken: %v", err)
		}
		if len(tok) != ResetTokenByteLength*2 {
			t.Fatalf("token length = %d, want %d", len(tok), ResetTokenByteLength*2)
		}
		if !hexToken.MatchString(tok) {
			t.Fatalf("token %q is not lowercase hex", tok)
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}

func TestGenerateSecureToken(t *testing.T) {
	tests := []struct {
		name       string
		byteLength int
		wantLen    int
		wantErr    bool
	}{
		{"single byte", 1, 2, false},
		{"default size", 16, 32, false},
		{"zero bytes", 0, 0, true},
		{"negative", -4, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := GenerateSecureToken(tt.byteLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateSecureToken(%d): %v", tt.byteLength, err)
			}
			if len(tok) != tt.wantLen {
				t.Errorf("token length = %d, want %d", len(tok), tt.wantLen)
			}
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	if got := NormalizeToken("  AB12Cd34  "); got != "ab12cd34" {
		t.Errorf("NormalizeToken = %q, want %q", got, "ab12cd34")
	}
}
