// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devlabs-ai/resume-screener/gen/ent/candidate"
	"github.com/devlabs-ai/resume-screener/gen/ent/job"
	"github.com/google/uuid"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *CandidateCreate) SetJobID(v string) *CandidateCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CandidateCreate) SetName(v string) *CandidateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CandidateCreate) SetEmail(v string) *CandidateCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *CandidateCreate) SetExperienceYears(v int) *CandidateCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetSkillsScore sets the "skills_score" field.
func (_c *CandidateCreate) SetSkillsScore(v int) *CandidateCreate {
	_c.mutation.SetSkillsScore(v)
	return _c
}

// SetEducationScore sets the "education_score" field.
func (_c *CandidateCreate) SetEducationScore(v int) *CandidateCreate {
	_c.mutation.SetEducationScore(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CandidateCreate) SetSummary(v string) *CandidateCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetWeightedScore sets the "weighted_score" field.
func (_c *CandidateCreate) SetWeightedScore(v int) *CandidateCreate {
	_c.mutation.SetWeightedScore(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CandidateCreate) SetStatus(v string) *CandidateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *CandidateCreate) SetSourceFile(v string) *CandidateCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableSourceFile(v *string) *CandidateCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CandidateCreate) SetCreatedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableCreatedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CandidateCreate) SetID(v uuid.UUID) *CandidateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableID(v *uuid.UUID) *CandidateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *CandidateCreate) SetJob(v *Job) *CandidateCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := candidate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := candidate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Candidate.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := candidate.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Candidate.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Candidate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Candidate.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := candidate.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Candidate.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`ent: missing required field "Candidate.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := candidate.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Candidate.experience_years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillsScore(); !ok {
		return &ValidationError{Name: "skills_score", err: errors.New(`ent: missing required field "Candidate.skills_score"`)}
	}
	if v, ok := _c.mutation.SkillsScore(); ok {
		if err := candidate.SkillsScoreValidator(v); err != nil {
			return &ValidationError{Name: "skills_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.skills_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EducationScore(); !ok {
		return &ValidationError{Name: "education_score", err: errors.New(`ent: missing required field "Candidate.education_score"`)}
	}
	if v, ok := _c.mutation.EducationScore(); ok {
		if err := candidate.EducationScoreValidator(v); err != nil {
			return &ValidationError{Name: "education_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.education_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Candidate.summary"`)}
	}
	if _, ok := _c.mutation.WeightedScore(); !ok {
		return &ValidationError{Name: "weighted_score", err: errors.New(`ent: missing required field "Candidate.weighted_score"`)}
	}
	if v, ok := _c.mutation.WeightedScore(); ok {
		if err := candidate.WeightedScoreValidator(v); err != nil {
			return &ValidationError{Name: "weighted_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.weighted_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Candidate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := candidate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Candidate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Candidate.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Candidate.job"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(candidate.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.SkillsScore(); ok {
		_spec.SetField(candidate.FieldSkillsScore, field.TypeInt, value)
		_node.SkillsScore = value
	}
	if value, ok := _c.mutation.EducationScore(); ok {
		_spec.SetField(candidate.FieldEducationScore, field.TypeInt, value)
		_node.EducationScore = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(candidate.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.WeightedScore(); ok {
		_spec.SetField(candidate.FieldWeightedScore, field.TypeInt, value)
		_node.WeightedScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(candidate.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(candidate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.JobTable,
			Columns: []string{candidate.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
