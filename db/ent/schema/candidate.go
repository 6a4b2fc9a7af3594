package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

var errScoreRange = errors.New("score must be within 0..100")

type Candidate struct{ ent.Schema }

func (Candidate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidates"},
	}
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("job_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.Int("experience_years").NonNegative(),
		field.Int("skills_score").Validate(scoreRange),
		field.Int("education_score").Validate(scoreRange),
		field.Text("summary"),
		field.Int("weighted_score").Validate(scoreRange),
		field.String("status").NotEmpty(),
		field.String("source_file").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("candidates").
			Field("job_id").
			Unique().
			Required(),
	}
}

func scoreRange(v int) error {
	if v < 0 || v > 100 {
		return errScoreRange
	}
	return nil
}
