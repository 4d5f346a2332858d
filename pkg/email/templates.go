package email

import (
	"fmt"
)

// AppointmentEmailData feeds the appointment lifecycle templates.
type AppointmentEmailData struct {
	Email      string
	Name       string
	ClinicName string
	Date       string // YYYY-MM-DD
	Shift      string // Morning | Afternoon | Evening
	Reason     string // cancellation only
}

// ClinicEmailData feeds the clinic review templates.
type ClinicEmailData struct {
	Email      string
	OwnerName  string
	ClinicName string
	Approved   bool
	Note       string
}

func shiftLabel(shift string) string {
	switch shift {
	case "Morning":
		return "buổi sáng"
	case "Afternoon":
		return "buổi chiều"
	case "Evening":
		return "buổi tối"
	default:
		return shift
	}
}

func greeting(name string) string {
	if name == "" {
		return "Chào bạn"
	}
	return "Chào " + name
}

// BuildOTPEmail creates the verification code email sent at registration.
func BuildOTPEmail(to, name, code string, expiryMinutes int) Message {
	subject := "Mã xác thực PawCare của bạn"

	textBody := fmt.Sprintf(`%s,

Mã xác thực của bạn là: %s

Mã có hiệu lực trong %d phút. Không chia sẻ mã này với bất kỳ ai.

Đội ngũ PawCare`,
		greeting(name), code, expiryMinutes)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p>Mã xác thực của bạn là:</p>
    <p style="background-color: #f3f4f6; padding: 12px 20px; border-radius: 6px; font-family: monospace; font-size: 28px; letter-spacing: 6px; text-align: center;">%s</p>
    <p>Mã có hiệu lực trong <strong>%d phút</strong>. Không chia sẻ mã này với bất kỳ ai.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Đội ngũ PawCare</p>
</body>
</html>`,
		greeting(name), code, expiryMinutes)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetEmail carries the single-use reset token. The token is
// rendered as a code rather than a link so the sender needs no knowledge of
// the front-end's URL layout.
func BuildPasswordResetEmail(to, name, token string, expiryMinutes int) Message {
	subject := "Đặt lại mật khẩu PawCare"

	textBody := fmt.Sprintf(`%s,

Chúng tôi nhận được yêu cầu đặt lại mật khẩu cho tài khoản của bạn.

Mã đặt lại mật khẩu: %s

Mã có hiệu lực trong %d phút và chỉ dùng được một lần. Nếu bạn không yêu cầu đặt lại mật khẩu, hãy bỏ qua email này.

Đội ngũ PawCare`,
		greeting(name), token, expiryMinutes)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p>Chúng tôi nhận được yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
    <p style="background-color: #f3f4f6; padding: 12px 20px; border-radius: 6px; font-family: monospace; font-size: 20px; letter-spacing: 2px; text-align: center;">%s</p>
    <p>Mã có hiệu lực trong <strong>%d phút</strong> và chỉ dùng được một lần. Nếu bạn không yêu cầu đặt lại mật khẩu, hãy bỏ qua email này.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Đội ngũ PawCare</p>
</body>
</html>`,
		greeting(name), token, expiryMinutes)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentConfirmedEmail tells the customer the clinic accepted.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Lịch hẹn tại %s đã được xác nhận", data.ClinicName)

	textBody := fmt.Sprintf(`%s,

Lịch hẹn của bạn tại %s vào ngày %s (%s) đã được xác nhận.

Vui lòng đến đúng giờ. Nếu cần thay đổi, hãy liên hệ phòng khám qua mục trò chuyện.

Đội ngũ PawCare`,
		greeting(data.Name), data.ClinicName, data.Date, shiftLabel(data.Shift))

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p>Lịch hẹn của bạn tại <strong>%s</strong> vào ngày <strong>%s</strong> (%s) đã được xác nhận.</p>
    <p>Vui lòng đến đúng giờ. Nếu cần thay đổi, hãy liên hệ phòng khám qua mục trò chuyện.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Đội ngũ PawCare</p>
</body>
</html>`,
		greeting(data.Name), data.ClinicName, data.Date, shiftLabel(data.Shift))

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail tells the customer a booking was cancelled.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Lịch hẹn tại %s đã bị hủy", data.ClinicName)

	reason := data.Reason
	if reason == "" {
		reason = "Không có lý do được cung cấp."
	}

	textBody := fmt.Sprintf(`%s,

Lịch hẹn của bạn tại %s vào ngày %s (%s) đã bị hủy.

Lý do: %s

Bạn có thể đặt lịch mới bất cứ lúc nào trên PawCare.

Đội ngũ PawCare`,
		greeting(data.Name), data.ClinicName, data.Date, shiftLabel(data.Shift), reason)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">%s,</h2>
    <p>Lịch hẹn của bạn tại <strong>%s</strong> vào ngày <strong>%s</strong> (%s) đã bị hủy.</p>
    <p>Lý do: %s</p>
    <p>Bạn có thể đặt lịch mới bất cứ lúc nào trên PawCare.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Đội ngũ PawCare</p>
</body>
</html>`,
		greeting(data.Name), data.ClinicName, data.Date, shiftLabel(data.Shift), reason)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildClinicReviewedEmail tells a partner the outcome of the admin review.
func BuildClinicReviewedEmail(data ClinicEmailData) Message {
	var subject, verdict string
	if data.Approved {
		subject = fmt.Sprintf("Phòng khám %s đã được phê duyệt", data.ClinicName)
		verdict = "đã được phê duyệt. Khách hàng có thể tìm thấy và đặt lịch tại phòng khám của bạn ngay bây giờ."
	} else {
		subject = fmt.Sprintf("Hồ sơ phòng khám %s chưa được phê duyệt", data.ClinicName)
		verdict = "chưa được phê duyệt."
	}

	note := ""
	if data.Note != "" {
		note = "\n\nGhi chú từ quản trị viên: " + data.Note
	}

	textBody := fmt.Sprintf(`%s,

Hồ sơ phòng khám %s của bạn %s%s

Đội ngũ PawCare`,
		greeting(data.OwnerName), data.ClinicName, verdict, note)

	htmlNote := ""
	if data.Note != "" {
		htmlNote = fmt.Sprintf(`<p>Ghi chú từ quản trị viên: <em>%s</em></p>`, data.Note)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p>Hồ sơ phòng khám <strong>%s</strong> của bạn %s</p>
    %s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Đội ngũ PawCare</p>
</body>
</html>`,
		greeting(data.OwnerName), data.ClinicName, verdict, htmlNote)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
