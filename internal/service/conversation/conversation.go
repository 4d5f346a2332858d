package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	entconv "github.com/pawcare-vn/pawcare_backend/internal/repo/conversation"
	entmsg "github.com/pawcare-vn/pawcare_backend/internal/repo/message"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// SubjectMessageNew carries the message id; the conversation id is the
// subject suffix.
const SubjectMessageNew = "pawcare.message.new"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SendMessageRequest struct {
	SenderID uuid.UUID
	Content  *string
	FileKey  *string
	FileName *string
	FileMime *string
}

type ListMessagesRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Open returns the thread between a customer and a clinic, creating
	// it on first contact. The chat widget calls this on mount.
	Open(ctx context.Context, customerID, clinicID uuid.UUID) (*repo.Conversation, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, page, perPage int) ([]*repo.Conversation, error)
	ListForClinic(ctx context.Context, clinicID uuid.UUID, page, perPage int) ([]*repo.Conversation, error)
	ListMessages(ctx context.Context, convID, userID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error)
	SendMessage(ctx context.Context, convID uuid.UUID, req SendMessageRequest) (*repo.Message, error)
	MarkRead(ctx context.Context, convID, readerID uuid.UUID) error
	UnreadCount(ctx context.Context, convID, readerID uuid.UUID) (int, error)
	DeleteMessage(ctx context.Context, convID, messageID, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &conversationService{db: db, nc: nc}
}

func (s *conversationService) Open(ctx context.Context, customerID, clinicID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Query().
		Where(
			entconv.CustomerID(customerID),
			entconv.ClinicID(clinicID),
		).
		Only(ctx)
	if err == nil {
		return conv, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	conv, err = s.db.Conversation.Create().
		SetCustomerID(customerID).
		SetClinicID(clinicID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) ListForCustomer(ctx context.Context, customerID uuid.UUID, page, perPage int) ([]*repo.Conversation, error) {
	return s.list(ctx, entconv.CustomerID(customerID), page, perPage)
}

func (s *conversationService) ListForClinic(ctx context.Context, clinicID uuid.UUID, page, perPage int) ([]*repo.Conversation, error) {
	return s.list(ctx, entconv.ClinicID(clinicID), page, perPage)
}

func (s *conversationService) list(ctx context.Context, pred predicate.Conversation, page, perPage int) ([]*repo.Conversation, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	convs, err := s.db.Conversation.Query().
		Where(pred, entconv.IsActive(true)).
		Order(entconv.ByLastMessageAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) ListMessages(ctx context.Context, convID, userID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error) {
	if _, err := s.participant(ctx, convID, userID); err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	msgs, err := s.db.Message.Query().
		Where(
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *conversationService) SendMessage(ctx context.Context, convID uuid.UUID, req SendMessageRequest) (*repo.Message, error) {
	hasContent := req.Content != nil && strings.TrimSpace(*req.Content) != ""
	if !hasContent && req.FileKey == nil {
		return nil, ErrEmptyMessage
	}

	if _, err := s.participant(ctx, convID, req.SenderID); err != nil {
		return nil, err
	}

	c := s.db.Message.Create().
		SetConversationID(convID).
		SetSenderID(req.SenderID)

	if hasContent {
		c = c.SetContent(strings.TrimSpace(*req.Content))
	}
	if req.FileKey != nil {
		c = c.SetNillableFileKey(req.FileKey)
	}
	if req.FileName != nil {
		c = c.SetNillableFileName(req.FileName)
	}
	if req.FileMime != nil {
		c = c.SetNillableFileMime(req.FileMime)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	_ = s.db.Conversation.Update().
		Where(entconv.ID(convID)).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx)

	if s.nc != nil {
		subject := fmt.Sprintf("%s.%s", SubjectMessageNew, convID.String())
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))
	}

	return msg, nil
}

func (s *conversationService) MarkRead(ctx context.Context, convID, readerID uuid.UUID) error {
	if _, err := s.participant(ctx, convID, readerID); err != nil {
		return err
	}

	now := time.Now()
	return s.db.Message.Update().
		Where(
			entmsg.ConversationID(convID),
			entmsg.SenderIDNEQ(readerID),
			entmsg.IsRead(false),
		).
		SetIsRead(true).
		SetReadAt(now).
		Exec(ctx)
}

func (s *conversationService) UnreadCount(ctx context.Context, convID, readerID uuid.UUID) (int, error) {
	if _, err := s.participant(ctx, convID, readerID); err != nil {
		return 0, err
	}

	n, err := s.db.Message.Query().
		Where(
			entmsg.ConversationID(convID),
			entmsg.SenderIDNEQ(readerID),
			entmsg.IsRead(false),
			entmsg.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

func (s *conversationService) DeleteMessage(ctx context.Context, convID, messageID, userID uuid.UUID) error {
	msg, err := s.db.Message.Query().
		Where(
			entmsg.ID(messageID),
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("get message: %w", err)
	}

	if msg.SenderID != userID {
		return ErrUnauthorized
	}

	return s.db.Message.UpdateOne(msg).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// participant resolves the conversation and checks the user is its customer
// or the owner of its clinic.
func (s *conversationService) participant(ctx context.Context, convID, userID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Get(ctx, convID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	if conv.CustomerID == userID {
		return conv, nil
	}

	owns, err := s.db.Clinic.Query().
		Where(entclinic.ID(conv.ClinicID), entclinic.OwnerID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check clinic owner: %w", err)
	}
	if !owns {
		return nil, ErrUnauthorized
	}
	return conv, nil
}
