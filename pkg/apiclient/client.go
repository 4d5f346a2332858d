// Package apiclient is the Go client for the PawCare REST API. It owns the
// concerns the web apps used to improvise: an injectable session store
// instead of ambient token reads, one normalizing parser for error payloads,
// defensive envelope decoding, and generation-numbered list loads so a stale
// response can never overwrite a newer one.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	http    *http.Client
	baseURL string
	store   SessionStore
}

type Option func(*Client)

// WithHTTPClient injects a custom *http.Client (tests, custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, store SessionStore, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one JSON request. A session past its expiry is cleared before
// anything is sent, which notifies store subscribers (the forced-logout
// path); non-2xx responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if sess, ok := c.store.Get(); ok && sess.Expired() {
		c.store.Clear()
		return ErrSessionExpired
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: marshal body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess, ok := c.store.Get(); ok && sess.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// envelope is the response convention of the whole API:
// {"status": "success", "data": ..., "pagination": {...}}.
type envelope struct {
	Status     string          `json:"status"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// decodeList unwraps a list envelope. A missing or malformed data field
// yields an empty slice, never an error: list consumers render empty states,
// they do not crash.
func decodeList[T any](env envelope) ([]T, *Pagination) {
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			items = nil
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, env.Pagination
}

type Appointment struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Shift        string   `json:"shift"`
	Status       string   `json:"status"`
	CreatedBy    string   `json:"created_by"`
	CustomerID   string   `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	Note         string   `json:"note"`
	PetIDs       []string `json:"pet_ids"`
	ServiceIDs   []string `json:"service_ids"`
	ClinicID     string   `json:"clinic_id"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Gender      string  `json:"gender"`
	Breed       string  `json:"breed"`
	Color       string  `json:"color"`
	WeightKg    float64 `json:"weight_kg"`
	DateOfBirth string  `json:"date_of_birth"`
	AvatarURL   string  `json:"avatar_url"`
	OwnerID     string  `json:"owner_id"`
}

type Clinic struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	WebsiteURL string `json:"website_url"`
	Status     string `json:"status"`
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

// Login authenticates and installs the resulting session in the store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (Session, error) {
	var env struct {
		Data loginPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &env); err != nil {
		return Session{}, err
	}

	sess := Session{
		AccessToken:  env.Data.AccessToken,
		RefreshToken: env.Data.RefreshToken,
		UserID:       env.Data.UserID,
		Role:         env.Data.Role,
	}
	if t, err := time.Parse(time.RFC3339, env.Data.ExpiresAt); err == nil {
		sess.ExpiresAt = t
	}
	c.store.Set(sess)
	return sess, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.store.Clear()
	return err
}

// ---------------------------------------------------------------------------
// Appointments
// ---------------------------------------------------------------------------

type AppointmentListQuery struct {
	Status    string
	DateFrom  string
	DateTo    string
	CreatedBy string
	Query     string
	Page      int
	Limit     int
}

// encode produces the query string the appointments endpoint binds:
// from/to for the date range and per_page for the page size. Values go
// through url.Values so free-text searches survive spaces and metacharacters.
func (q AppointmentListQuery) encode() string {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("status", q.Status)
	set("from", q.DateFrom)
	set("to", q.DateTo)
	set("created_by", q.CreatedBy)
	set("q", q.Query)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("per_page", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListAppointments(ctx context.Context, q AppointmentListQuery) ([]Appointment, *Pagination, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments"+q.encode(), nil, &env); err != nil {
		return nil, nil, err
	}
	items, p := decodeList[Appointment](env)
	return items, p, nil
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	var env struct {
		Data Appointment `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) ConfirmAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/api/v1/appointments/"+id+"/confirm", nil, nil)
}

// CancelAppointment requires a non-empty reason; the server rejects blanks,
// so the client does too rather than waste a round trip.
func (c *Client) CancelAppointment(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &APIError{
			Kind:       KindFieldErrors,
			StatusCode: http.StatusBadRequest,
			Message:    "Vui lòng nhập lý do hủy lịch",
			Fields:     map[string]string{"reason": "Lý do hủy là bắt buộc"},
		}
	}
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPatch, "/api/v1/appointments/"+id+"/cancel", body, nil)
}

// ---------------------------------------------------------------------------
// Pets
// ---------------------------------------------------------------------------

func (c *Client) ListPets(ctx context.Context) ([]Pet, *Pagination, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/pets", nil, &env); err != nil {
		return nil, nil, err
	}
	items, p := decodeList[Pet](env)
	return items, p, nil
}

func (c *Client) CreatePet(ctx context.Context, pet Pet) (*Pet, error) {
	var env struct {
		Data Pet `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/pets", pet, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/pets/"+id, nil, nil)
}

// ---------------------------------------------------------------------------
// Clinics & notifications
// ---------------------------------------------------------------------------

func (c *Client) ListClinics(ctx context.Context) ([]Clinic, *Pagination, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/clinics", nil, &env); err != nil {
		return nil, nil, err
	}
	items, p := decodeList[Clinic](env)
	return items, p, nil
}

// UnreadCount powers the notification badge.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var env struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications/unread-count", nil, &env); err != nil {
		return 0, err
	}
	return env.Data.Count, nil
}
