package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Clinic is a partner veterinary clinic. A clinic is owned by a single
// partner user and must be approved by an admin before it is listed.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Comment("FK → users.id (role partner)"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the clinic"),

		field.String("description").
			Optional().
			Nillable(),

		field.String("logo_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for clinic logo"),

		field.String("phone").
			MaxLen(20).
			NotEmpty(),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("address").
			NotEmpty(),

		field.String("ward").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("district").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("license_number_enc").
			NotEmpty().
			Sensitive().
			Comment("Business license number, AES-GCM encrypted at rest"),

		field.Enum("status").
			Values("pending", "approved", "rejected", "suspended").
			Default("pending"),

		field.Text("review_note").
			Optional().
			Nillable().
			Comment("Admin note attached on approval or rejection"),

		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("owner_id"),
		index.Fields("status"),
	}
}

func (Clinic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("veterinarians", Veterinarian.Type),
		edge.To("services", ServiceItem.Type),
	}
}
