package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ServiceItem is a bookable service offered by a clinic, priced in VND.
type ServiceItem struct {
	ent.Schema
}

func (ServiceItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ServiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("description").
			Optional().
			Nillable(),

		field.Int64("price").
			NonNegative().
			Comment("Price in VND"),

		field.Int("duration_min").
			Default(30).
			Positive(),

		field.Bool("is_active").Default(true),
	}
}

func (ServiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "is_active"),
	}
}

func (ServiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("services").
			Unique().
			Required().
			Field("clinic_id"),
	}
}
