package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Event persistence for cross-pod distribution and catchup.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// id field auto-generated by Ent as auto-increment int
		field.String("session_id"),
		field.String("channel").
			Comment("Event channel"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Event data"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Channel filtering
		index.Fields("channel"),
		// Session-based cleanup
		index.Fields("session_id"),
		// Cleanup queries
		index.Fields("created_at"),
		// Polling queries
		index.Fields("channel", "id"),
	}
}
