package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Appointment is a booking of one or more pets into a clinic shift.
// Status and shift values are stored exactly as they travel on the wire.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("customer_id", uuid.UUID{}).
			Comment("FK → users.id (role customer)"),

		field.String("date").
			MaxLen(10).
			NotEmpty().
			Match(dateKeyRe).
			Comment("Calendar day in YYYY-MM-DD form, local clinic time"),

		field.Enum("shift").
			Values("Morning", "Afternoon", "Evening"),

		field.Enum("status").
			Values("Pending_Confirmation", "Confirmed", "Cancelled", "Completed").
			Default("Pending_Confirmation"),

		field.Enum("created_by").
			Values("customer", "partner").
			Default("customer").
			Comment("Which side booked the appointment"),

		field.Text("note").
			Optional().
			Nillable(),

		field.Text("cancel_reason").
			Optional().
			Nillable(),

		field.Time("confirmed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "date", "shift"),
		index.Fields("clinic_id", "status", "date"),
		index.Fields("customer_id", "date"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pets", Pet.Type),
		edge.To("services", ServiceItem.Type),
	}
}
