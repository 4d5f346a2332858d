package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Veterinarian is a staff profile attached to a clinic.
type Veterinarian struct {
	ent.Schema
}

func (Veterinarian) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Veterinarian) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("full_name").
			MaxLen(100).
			NotEmpty(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("license_number_enc").
			Optional().
			Nillable().
			Sensitive().
			Comment("Practice license number, AES-GCM encrypted at rest"),

		field.Int("years_experience").
			Default(0).
			NonNegative(),

		field.String("avatar_key").
			Optional().
			Nillable().
			MaxLen(500),

		field.Bool("is_active").Default(true),
	}
}

func (Veterinarian) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}

func (Veterinarian) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("veterinarians").
			Unique().
			Required().
			Field("clinic_id"),
	}
}
