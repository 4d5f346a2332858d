package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// UserSession is the durable record of a login session. Redis holds the
// live session keyed by sid; this table survives Redis restarts and is what
// audit queries and bulk revocation run against.
type UserSession struct {
	ent.Schema
}

func (UserSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (UserSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Session owner"),

		field.String("session_id").
			Unique().
			NotEmpty().
			MaxLen(36).
			Immutable().
			Comment("UUID carried as the sid claim in access and refresh tokens"),

		// sha-256 hex, never the plaintext refresh token
		field.String("refresh_token_hash").
			Optional().
			Nillable().
			MaxLen(64).
			Sensitive(),

		field.String("user_agent").
			Optional().
			Nillable(),

		// 45 chars fits a full IPv6 textual address
		field.String("ip_address").
			Optional().
			Nillable().
			MaxLen(45),

		field.Time("expires_at").
			Comment("Refresh-token expiry; the session dies with it"),

		field.Time("last_used_at").
			Optional().
			Nillable(),

		field.Time("revoked_at").
			Optional().
			Nillable().
			Comment("Set on logout or refresh-token rotation"),
	}
}

func (UserSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
	}
}

func (UserSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
