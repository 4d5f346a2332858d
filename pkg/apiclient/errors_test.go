package apiclient

import "testing"

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantKind   ErrorKind
		wantMsg    string
		wantFields map[string]string
	}{
		{
			name:     "plain message",
			body:     `{"status":"error","message":"Không tìm thấy lịch hẹn"}`,
			wantKind: KindMessage,
			wantMsg:  "Không tìm thấy lịch hẹn",
		},
		{
			name:     "message as array is joined",
			body:     `{"status":"error","message":["lỗi thứ nhất","lỗi thứ hai"]}`,
			wantKind: KindMessage,
			wantMsg:  "lỗi thứ nhất; lỗi thứ hai",
		},
		{
			name:     "error field instead of message",
			body:     `{"error":"token không hợp lệ"}`,
			wantKind: KindMessage,
			wantMsg:  "token không hợp lệ",
		},
		{
			name:       "field errors map",
			body:       `{"status":"error","message":"Dữ liệu không hợp lệ","errors":{"name":"Tên không được để trống"}}`,
			wantKind:   KindFieldErrors,
			wantMsg:    "Dữ liệu không hợp lệ",
			wantFields: map[string]string{"name": "Tên không được để trống"},
		},
		{
			name:       "field errors as string arrays",
			body:       `{"errors":{"phone":["Số điện thoại không hợp lệ","quá ngắn"]}}`,
			wantKind:   KindFieldErrors,
			wantMsg:    FallbackMessage,
			wantFields: map[string]string{"phone": "Số điện thoại không hợp lệ"},
		},
		{
			name:     "html body",
			body:     `<html><body>502 Bad Gateway</body></html>`,
			wantKind: KindUnknown,
			wantMsg:  FallbackMessage,
		},
		{
			name:     "empty body",
			body:     ``,
			wantKind: KindUnknown,
			wantMsg:  FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAPIError(422, []byte(tt.body))
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
			if got.StatusCode != 422 {
				t.Errorf("StatusCode = %d, want 422", got.StatusCode)
			}
			for f, m := range tt.wantFields {
				if got.Fields[f] != m {
					t.Errorf("Fields[%q] = %q, want %q", f, got.Fields[f], m)
				}
			}
		})
	}
}
