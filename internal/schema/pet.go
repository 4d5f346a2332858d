package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Pet belongs to a customer. Validation bounds mirror the registration
// form rules so dirty rows cannot enter through other code paths.
type Pet struct {
	ent.Schema
}

func (Pet) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Pet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Comment("FK → users.id (role customer)"),

		field.String("name").
			MinLen(2).
			MaxLen(15),

		field.Enum("species").
			Values("dog", "cat", "bird", "rabbit", "hamster", "other").
			Default("other"),

		field.String("breed").
			Optional().
			Nillable().
			MaxLen(100),

		field.Enum("gender").
			Values("male", "female", "unknown").
			Default("unknown"),

		field.Float("weight_kg").
			Optional().
			Min(0).
			Max(200),

		// Date of birth bounds (not in the future, at most 50 years back)
		// are enforced by the validation package in the service layer.
		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("avatar_key").
			Optional().
			Nillable().
			MaxLen(500),

		field.Text("medical_notes_enc").
			Optional().
			Nillable().
			Sensitive().
			Comment("Owner-provided medical history, AES-GCM encrypted at rest"),
	}
}

func (Pet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
