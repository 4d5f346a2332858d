package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is one entry in a customer↔clinic conversation. Either content or
// an attachment must be present; the service layer enforces that, the schema
// keeps both optional.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
		SoftDeleteMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("conversation_id", uuid.UUID{}).
			Comment("Owning conversation"),

		field.UUID("sender_id", uuid.UUID{}).
			Comment("User who wrote the message, customer or clinic owner"),

		field.Text("content").
			Optional().
			Nillable(),

		// Attachment, stored under uploads/chat/<conversation>/ in S3.
		// file_name is the original upload name shown in the chat UI.
		field.String("file_key").
			Optional().
			Nillable(),

		field.String("file_name").
			Optional().
			Nillable(),

		field.String("file_mime").
			Optional().
			Nillable(),

		field.Bool("is_read").
			Default(false),

		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation history is always read in created_at order.
		index.Fields("conversation_id", "created_at"),
		index.Fields("sender_id"),
	}
}
