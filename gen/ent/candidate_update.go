// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devlabs-ai/resume-screener/gen/ent/candidate"
	"github.com/devlabs-ai/resume-screener/gen/ent/job"
	"github.com/devlabs-ai/resume-screener/gen/ent/predicate"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *CandidateUpdate) SetJobID(v string) *CandidateUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableJobID(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdate) SetName(v string) *CandidateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *CandidateUpdate) SetExperienceYears(v int) *CandidateUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableExperienceYears(v *int) *CandidateUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *CandidateUpdate) AddExperienceYears(v int) *CandidateUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetSkillsScore sets the "skills_score" field.
func (_u *CandidateUpdate) SetSkillsScore(v int) *CandidateUpdate {
	_u.mutation.ResetSkillsScore()
	_u.mutation.SetSkillsScore(v)
	return _u
}

// SetNillableSkillsScore sets the "skills_score" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSkillsScore(v *int) *CandidateUpdate {
	if v != nil {
		_u.SetSkillsScore(*v)
	}
	return _u
}

// AddSkillsScore adds value to the "skills_score" field.
func (_u *CandidateUpdate) AddSkillsScore(v int) *CandidateUpdate {
	_u.mutation.AddSkillsScore(v)
	return _u
}

// SetEducationScore sets the "education_score" field.
func (_u *CandidateUpdate) SetEducationScore(v int) *CandidateUpdate {
	_u.mutation.ResetEducationScore()
	_u.mutation.SetEducationScore(v)
	return _u
}

// SetNillableEducationScore sets the "education_score" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEducationScore(v *int) *CandidateUpdate {
	if v != nil {
		_u.SetEducationScore(*v)
	}
	return _u
}

// AddEducationScore adds value to the "education_score" field.
func (_u *CandidateUpdate) AddEducationScore(v int) *CandidateUpdate {
	_u.mutation.AddEducationScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CandidateUpdate) SetSummary(v string) *CandidateUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSummary(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *CandidateUpdate) SetWeightedScore(v int) *CandidateUpdate {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableWeightedScore(v *int) *CandidateUpdate {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *CandidateUpdate) AddWeightedScore(v int) *CandidateUpdate {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdate) SetStatus(v string) *CandidateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableStatus(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *CandidateUpdate) SetSourceFile(v string) *CandidateUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSourceFile(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *CandidateUpdate) ClearSourceFile() *CandidateUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *CandidateUpdate) SetJob(v *Job) *CandidateUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *CandidateUpdate) ClearJob() *CandidateUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdate) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := candidate.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Candidate.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := candidate.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Candidate.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := candidate.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Candidate.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillsScore(); ok {
		if err := candidate.SkillsScoreValidator(v); err != nil {
			return &ValidationError{Name: "skills_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.skills_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EducationScore(); ok {
		if err := candidate.EducationScoreValidator(v); err != nil {
			return &ValidationError{Name: "education_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.education_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightedScore(); ok {
		if err := candidate.WeightedScoreValidator(v); err != nil {
			return &ValidationError{Name: "weighted_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.weighted_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := candidate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Candidate.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.job"`)
	}
	return nil
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(candidate.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(candidate.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsScore(); ok {
		_spec.SetField(candidate.FieldSkillsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsScore(); ok {
		_spec.AddField(candidate.FieldSkillsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationScore(); ok {
		_spec.SetField(candidate.FieldEducationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEducationScore(); ok {
		_spec.AddField(candidate.FieldEducationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(candidate.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(candidate.FieldWeightedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(candidate.FieldWeightedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(candidate.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(candidate.FieldSourceFile, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetJobID sets the "job_id" field.
func (_u *CandidateUpdateOne) SetJobID(v string) *CandidateUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableJobID(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdateOne) SetName(v string) *CandidateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *CandidateUpdateOne) SetExperienceYears(v int) *CandidateUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableExperienceYears(v *int) *CandidateUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *CandidateUpdateOne) AddExperienceYears(v int) *CandidateUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetSkillsScore sets the "skills_score" field.
func (_u *CandidateUpdateOne) SetSkillsScore(v int) *CandidateUpdateOne {
	_u.mutation.ResetSkillsScore()
	_u.mutation.SetSkillsScore(v)
	return _u
}

// SetNillableSkillsScore sets the "skills_score" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSkillsScore(v *int) *CandidateUpdateOne {
	if v != nil {
		_u.SetSkillsScore(*v)
	}
	return _u
}

// AddSkillsScore adds value to the "skills_score" field.
func (_u *CandidateUpdateOne) AddSkillsScore(v int) *CandidateUpdateOne {
	_u.mutation.AddSkillsScore(v)
	return _u
}

// SetEducationScore sets the "education_score" field.
func (_u *CandidateUpdateOne) SetEducationScore(v int) *CandidateUpdateOne {
	_u.mutation.ResetEducationScore()
	_u.mutation.SetEducationScore(v)
	return _u
}

// SetNillableEducationScore sets the "education_score" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEducationScore(v *int) *CandidateUpdateOne {
	if v != nil {
		_u.SetEducationScore(*v)
	}
	return _u
}

// AddEducationScore adds value to the "education_score" field.
func (_u *CandidateUpdateOne) AddEducationScore(v int) *CandidateUpdateOne {
	_u.mutation.AddEducationScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CandidateUpdateOne) SetSummary(v string) *CandidateUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSummary(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *CandidateUpdateOne) SetWeightedScore(v int) *CandidateUpdateOne {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableWeightedScore(v *int) *CandidateUpdateOne {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *CandidateUpdateOne) AddWeightedScore(v int) *CandidateUpdateOne {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdateOne) SetStatus(v string) *CandidateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableStatus(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *CandidateUpdateOne) SetSourceFile(v string) *CandidateUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSourceFile(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *CandidateUpdateOne) ClearSourceFile() *CandidateUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *CandidateUpdateOne) SetJob(v *Job) *CandidateUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *CandidateUpdateOne) ClearJob() *CandidateUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdateOne) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := candidate.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Candidate.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := candidate.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Candidate.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := candidate.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Candidate.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillsScore(); ok {
		if err := candidate.SkillsScoreValidator(v); err != nil {
			return &ValidationError{Name: "skills_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.skills_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EducationScore(); ok {
		if err := candidate.EducationScoreValidator(v); err != nil {
			return &ValidationError{Name: "education_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.education_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightedScore(); ok {
		if err := candidate.WeightedScoreValidator(v); err != nil {
			return &ValidationError{Name: "weighted_score", err: fmt.Errorf(`ent: validator failed for field "Candidate.weighted_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := candidate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Candidate.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.job"`)
	}
	return nil
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(candidate.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(candidate.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillsScore(); ok {
		_spec.SetField(candidate.FieldSkillsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkillsScore(); ok {
		_spec.AddField(candidate.FieldSkillsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationScore(); ok {
		_spec.SetField(candidate.FieldEducationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEducationScore(); ok {
		_spec.AddField(candidate.FieldEducationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(candidate.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(candidate.FieldWeightedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(candidate.FieldWeightedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(candidate.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(candidate.FieldSourceFile, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
