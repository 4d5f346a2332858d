package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation is the single chat thread between a customer and a clinic.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("customer_id", uuid.UUID{}).
			Comment("FK → users.id (role customer)"),

		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.Time("last_message_at").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id", "clinic_id").Unique(),
		index.Fields("clinic_id"),
	}
}
