package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			Unique().
			MaxLen(20).
			Comment("E.164, normalized from VN local format"),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Enum("role").
			Values("customer", "partner", "admin").
			Default("customer"),

		field.String("avatar_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for profile picture"),

		field.Enum("status").
			Values("active", "suspended").
			Default("active"),

		field.Bool("email_verified").Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
	}
}
