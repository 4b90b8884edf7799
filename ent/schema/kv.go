package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KV holds one persisted record under a well-known key, such as the
// teacher profile or the usage stats, as an opaque JSON string.
type KV struct {
	ent.Schema
}

func (KV) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Record name, e.g. shiksha_user"),
		field.Text("data").
			Comment("Stored value, usually JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Time of the last write"),
	}
}
