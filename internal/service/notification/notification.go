package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entnotif "github.com/pawcare-vn/pawcare_backend/internal/repo/notification"
)

// signalTTL bounds how long the "something changed" marker lives. Clients
// poll the unread count anyway; the marker only wakes them up early.
const signalTTL = 7 * 24 * time.Hour

// redisKeySignal is the pub/sub channel for a user's notification badge.
func redisKeySignal(userID uuid.UUID) string { return "notify:" + userID.String() }

// redisKeyLast stores the unix timestamp of the user's latest notification.
func redisKeyLast(userID uuid.UUID) string { return "notify:last:" + userID.String() }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID uuid.UUID
	Type   string
	Title  string
	Body   *string
	Data   map[string]any
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	// LastSignal returns when the user's newest notification arrived,
	// zero time when the marker is absent.
	LastSignal(ctx context.Context, userID uuid.UUID) (time.Time, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db  *repo.Client
	rdb *redis.Client
}

func New(db *repo.Client, rdb *redis.Client) Service {
	return &notificationService{db: db, rdb: rdb}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(req.Type).
		SetTitle(req.Title)

	if req.Body != nil {
		c = c.SetBody(*req.Body)
	}
	if req.Data != nil {
		c = c.SetData(req.Data)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	// Badge side-channel: bump the marker and wake any subscribed client.
	// Both are best-effort; the notification row is the source of truth.
	now := strconv.FormatInt(n.CreatedAt.Unix(), 10)
	s.rdb.Set(ctx, redisKeyLast(req.UserID), now, signalTTL)
	s.rdb.Publish(ctx, redisKeySignal(req.UserID), now)

	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.UserID(userID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

func (s *notificationService) LastSignal(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	raw, err := s.rdb.Get(ctx, redisKeyLast(userID)).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get signal: %w", err)
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, nil
	}
	return time.Unix(sec, 0), nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
}
