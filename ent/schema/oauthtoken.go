package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OAuthToken holds the schema definition for the OAuthToken entity.
// One row per (user, provider) connection; access tokens are sealed with
// AES-GCM before they reach this table.
type OAuthToken struct {
	ent.Schema
}

// Fields of the OAuthToken.
func (OAuthToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Comment("Chat-platform user identifier"),
		field.String("provider").
			Comment("Connected service (notion, linear, google, spotify, slack, github)"),
		field.String("access_token_encrypted").
			Sensitive().
			Comment("AES-GCM sealed access token, base64"),
		field.String("refresh_token_encrypted").
			Optional().
			Nillable().
			Sensitive(),
		field.Strings("scopes").
			Optional().
			Comment("OAuth scopes granted at connect time"),
		field.String("workspace_id").
			Optional().
			Nillable().
			Comment("Provider workspace/team identifier"),
		field.String("workspace_name").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OAuthToken.
func (OAuthToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider").
			Unique(),
		index.Fields("user_id"),
	}
}

// Annotations pins the table name; Ent would otherwise pluralize to o_auth_tokens.
func (OAuthToken) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "oauth_tokens"},
	}
}
