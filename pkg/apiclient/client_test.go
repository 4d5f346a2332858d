package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := NewMemoryStore()
	return New(srv.URL, store), store
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","data":[]}`))
	})
	store.Set(Session{AccessToken: "tok-123", ExpiresAt: time.Now().Add(time.Hour)})

	if _, _, err := c.ListAppointments(context.Background(), AppointmentListQuery{}); err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestExpiredSessionClearsAndNotifies(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server with an expired session")
	})
	store.Set(Session{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)})

	var loggedOut bool
	cancel := store.Subscribe(func(_ Session, ok bool) {
		if !ok {
			loggedOut = true
		}
	})
	defer cancel()

	_, _, err := c.ListAppointments(context.Background(), AppointmentListQuery{})
	if err != ErrSessionExpired {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if !loggedOut {
		t.Error("subscriber was not told about the forced logout")
	}
	if _, ok := store.Get(); ok {
		t.Error("expired session still present in the store")
	}
}

func TestListDecodingIsDefensive(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data missing", `{"status":"success"}`},
		{"data wrong type", `{"status":"success","data":{"weird":true}}`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			items, _, err := c.ListAppointments(context.Background(), AppointmentListQuery{})
			if err != nil {
				t.Fatalf("ListAppointments: %v", err)
			}
			if items == nil || len(items) != 0 {
				t.Errorf("items = %v, want empty slice", items)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[{"id":"A1"}],"pagination":{"total":41,"page":2,"limit":20,"totalPages":3}}`))
	})
	items, p, err := c.ListAppointments(context.Background(), AppointmentListQuery{Page: 2})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(items) != 1 || items[0].ID != "A1" {
		t.Errorf("items = %v", items)
	}
	if p == nil || p.Total != 41 || p.TotalPages != 3 {
		t.Errorf("pagination = %+v", p)
	}
}

func TestListQueryEncoding(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	q := AppointmentListQuery{
		Status:   "Confirmed",
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-31",
		Query:    "thị an&status=Cancelled",
		Page:     2,
		Limit:    50,
	}
	if _, _, err := c.ListAppointments(context.Background(), q); err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}

	// The server binds from/to/per_page, so those are the names on the wire.
	want := map[string]string{
		"status":   "Confirmed",
		"from":     "2024-03-01",
		"to":       "2024-03-31",
		"q":        "thị an&status=Cancelled",
		"page":     "2",
		"per_page": "50",
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("query[%s] = %q, want %q", k, got.Get(k), v)
		}
	}
	if got.Has("date_from") || got.Has("limit") {
		t.Errorf("unexpected parameter names in %v", got)
	}
	// A literal & in the free-text search must stay inside one parameter.
	if got.Get("status") == "Cancelled" {
		t.Error("free-text query injected a status parameter")
	}
}

func TestCancelRequiresReason(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent without a reason")
	})
	err := c.CancelAppointment(context.Background(), "A1", "   ")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Kind != KindFieldErrors || apiErr.Fields["reason"] == "" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestLoginInstallsSession(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"access_token":"at","refresh_token":"rt","expires_at":"2030-01-02T03:04:05Z","user_id":"U1","role":"customer"}}`))
	})

	var notified bool
	cancel := store.Subscribe(func(s Session, ok bool) {
		notified = ok && s.AccessToken == "at"
	})
	defer cancel()

	sess, err := c.Login(context.Background(), LoginRequest{Email: "an@example.vn", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != "U1" || sess.Role != "customer" {
		t.Errorf("session = %+v", sess)
	}
	if sess.ExpiresAt.Year() != 2030 {
		t.Errorf("expiry not parsed: %v", sess.ExpiresAt)
	}
	if !notified {
		t.Error("store subscriber not notified on login")
	}
}
