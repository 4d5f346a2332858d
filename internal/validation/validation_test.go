package validation

import (
	"errors"
	"testing"
	"time"
)

func TestErrorIf(t *testing.T) {
	fe := FieldErrors{}
	if err := ErrorIf(fe); err != nil {
		t.Fatalf("empty field errors produced %v", err)
	}

	fe.Add("name", "Trường này là bắt buộc")
	err := ErrorIf(fe)
	if err == nil {
		t.Fatal("expected an error")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Fields["name"] == "" {
		t.Error("field message lost")
	}
}

func TestAddKeepsFirstMessage(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("name", "first")
	fe.Add("name", "second")
	if fe["name"] != "first" {
		t.Errorf("Add overwrote the first message: %q", fe["name"])
	}
}

func TestStringLen(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		min    int
		max    int
		wantOK bool
	}{
		{"too short", "A", 2, 15, false},
		{"lower bound", "Bo", 2, 15, true},
		{"upper bound", "Mười lăm ký tựs", 2, 15, true},
		{"too long", "một cái tên quá dài cho thú cưng", 2, 15, false},
		{"unicode counted by runes", "Mèo Ú", 2, 15, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := FieldErrors{}
			StringLen(fe, "name", tt.value, tt.min, tt.max)
			if ok := len(fe) == 0; ok != tt.wantOK {
				t.Errorf("StringLen(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
		})
	}
}

func TestFloatRange(t *testing.T) {
	tests := []struct {
		value  float64
		wantOK bool
	}{
		{-0.5, false},
		{0, true},
		{4.2, true},
		{200, true},
		{200.1, false},
	}
	for _, tt := range tests {
		fe := FieldErrors{}
		FloatRange(fe, "weight", tt.value, 0, 200)
		if ok := len(fe) == 0; ok != tt.wantOK {
			t.Errorf("FloatRange(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		value  string
		wantOK bool
	}{
		{"0912345678", true},
		{"+84912345678", true},
		{"12345", false},
		{"not a phone", false},
	}
	for _, tt := range tests {
		fe := FieldErrors{}
		Phone(fe, "phone", tt.value)
		if ok := len(fe) == 0; ok != tt.wantOK {
			t.Errorf("Phone(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	if got := FormatPhone("0912345678"); got != "+84912345678" {
		t.Errorf("FormatPhone = %q, want +84912345678", got)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		value  string
		wantOK bool
	}{
		{"https://clinic.example.vn/about", true},
		{"http://localhost:3000", true},
		{"ftp://files.example.vn", false},
		{"clinic.example.vn", false},
		{"", false},
	}
	for _, tt := range tests {
		fe := FieldErrors{}
		URL(fe, "website_url", tt.value)
		if ok := len(fe) == 0; ok != tt.wantOK {
			t.Errorf("URL(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
		}
	}
}

func TestBirthDate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		value  time.Time
		wantOK bool
	}{
		{"yesterday", now.AddDate(0, 0, -1), true},
		{"tomorrow", now.AddDate(0, 0, 1), false},
		{"forty-nine years ago", now.AddDate(-49, 0, 0), true},
		{"fifty-one years ago", now.AddDate(-51, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := FieldErrors{}
			BirthDate(fe, "date_of_birth", tt.value, 50)
			if ok := len(fe) == 0; ok != tt.wantOK {
				t.Errorf("BirthDate ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}
