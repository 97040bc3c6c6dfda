package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResult is the outcome of one completed questionnaire. The
// answers themselves are not kept.
type AssessmentResult struct {
	ent.Schema
}

func (AssessmentResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("profile").
			NotEmpty().
			Comment("Profile key: conservador, moderado or arrojado"),
		field.Float("score"),
		field.Float("max_score"),
		field.Float("normalized").
			Comment("score * 100 / max_score"),
		field.Int("answered"),
		field.Int("total"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (AssessmentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("profile"),
	}
}
