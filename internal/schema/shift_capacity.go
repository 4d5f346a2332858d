package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ShiftCapacity caps how many appointments a clinic accepts in one shift
// of one day. Absence of a row means the clinic default applies.
type ShiftCapacity struct {
	ent.Schema
}

func (ShiftCapacity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ShiftCapacity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("date").
			MaxLen(10).
			NotEmpty().
			Match(dateKeyRe),

		field.Enum("shift").
			Values("Morning", "Afternoon", "Evening"),

		field.Int("capacity").
			NonNegative().
			Comment("0 closes the shift for booking"),
	}
}

func (ShiftCapacity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "date", "shift").Unique(),
	}
}
