package email

import (
	"strings"
	"testing"
)

func TestShiftLabel(t *testing.T) {
	tests := []struct {
		shift string
		want  string
	}{
		{"Morning", "buổi sáng"},
		{"Afternoon", "buổi chiều"},
		{"Evening", "buổi tối"},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		if got := shiftLabel(tt.shift); got != tt.want {
			t.Errorf("shiftLabel(%q) = %q, want %q", tt.shift, got, tt.want)
		}
	}
}

func TestBuildPasswordResetEmail(t *testing.T) {
	msg := BuildPasswordResetEmail("an@example.com", "An", "a1b2c3d4e5f60718293a4b5c6d7e8f90", 30)

	if len(msg.To) != 1 || msg.To[0] != "an@example.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.TextBody, "a1b2c3d4e5f60718293a4b5c6d7e8f90") {
		t.Error("text body should contain the reset token")
	}
	if !strings.Contains(msg.HTMLBody, "a1b2c3d4e5f60718293a4b5c6d7e8f90") {
		t.Error("HTML body should contain the reset token")
	}
	if !strings.Contains(msg.TextBody, "30") {
		t.Error("text body should mention the expiry")
	}
	if !strings.Contains(msg.TextBody, "Chào An") {
		t.Error("text body should greet by name")
	}
}

func TestBuildOTPEmail(t *testing.T) {
	msg := BuildOTPEmail("an@example.com", "An", "123456", 10)

	if len(msg.To) != 1 || msg.To[0] != "an@example.com" {
		t.Errorf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.TextBody, "123456") {
		t.Error("text body should contain the code")
	}
	if !strings.Contains(msg.HTMLBody, "123456") {
		t.Error("HTML body should contain the code")
	}
	if !strings.Contains(msg.TextBody, "10") {
		t.Error("text body should mention the expiry")
	}
	if !strings.Contains(msg.TextBody, "Chào An") {
		t.Error("text body should greet the user by name")
	}
}

func TestBuildAppointmentCancelledEmail(t *testing.T) {
	data := AppointmentEmailData{
		Email:      "an@example.com",
		Name:       "An",
		ClinicName: "Phòng Khám Thú Y Sài Gòn",
		Date:       "2026-03-15",
		Shift:      "Morning",
	}

	msg := BuildAppointmentCancelledEmail(data)
	if !strings.Contains(msg.TextBody, "Không có lý do được cung cấp.") {
		t.Error("missing reason should fall back to the default wording")
	}

	data.Reason = "Bác sĩ bận đột xuất"
	msg = BuildAppointmentCancelledEmail(data)
	if !strings.Contains(msg.TextBody, "Bác sĩ bận đột xuất") {
		t.Error("text body should carry the cancellation reason")
	}
	if !strings.Contains(msg.TextBody, "buổi sáng") {
		t.Error("text body should translate the shift")
	}
}

func TestBuildClinicReviewedEmail(t *testing.T) {
	data := ClinicEmailData{
		Email:      "owner@example.com",
		OwnerName:  "Minh",
		ClinicName: "PetCare Đà Nẵng",
		Approved:   true,
	}

	approved := BuildClinicReviewedEmail(data)
	data.Approved = false
	data.Note = "Thiếu giấy phép kinh doanh"
	rejected := BuildClinicReviewedEmail(data)

	if approved.Subject == rejected.Subject {
		t.Error("approved and rejected emails should have different subjects")
	}
	if !strings.Contains(rejected.TextBody, "Thiếu giấy phép kinh doanh") {
		t.Error("rejection email should carry the review note")
	}
	if !strings.Contains(approved.TextBody, "PetCare Đà Nẵng") {
		t.Error("email should mention the clinic name")
	}
}
