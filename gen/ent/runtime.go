// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devlabs-ai/resume-screener/db/ent/schema"
	"github.com/devlabs-ai/resume-screener/gen/ent/candidate"
	"github.com/devlabs-ai/resume-screener/gen/ent/job"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescJobID is the schema descriptor for job_id field.
	candidateDescJobID := candidateFields[1].Descriptor()
	// candidate.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	candidate.JobIDValidator = candidateDescJobID.Validators[0].(func(string) error)
	// candidateDescName is the schema descriptor for name field.
	candidateDescName := candidateFields[2].Descriptor()
	// candidate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	candidate.NameValidator = candidateDescName.Validators[0].(func(string) error)
	// candidateDescEmail is the schema descriptor for email field.
	candidateDescEmail := candidateFields[3].Descriptor()
	// candidate.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	candidate.EmailValidator = candidateDescEmail.Validators[0].(func(string) error)
	// candidateDescExperienceYears is the schema descriptor for experience_years field.
	candidateDescExperienceYears := candidateFields[4].Descriptor()
	// candidate.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	candidate.ExperienceYearsValidator = candidateDescExperienceYears.Validators[0].(func(int) error)
	// candidateDescSkillsScore is the schema descriptor for skills_score field.
	candidateDescSkillsScore := candidateFields[5].Descriptor()
	// candidate.SkillsScoreValidator is a validator for the "skills_score" field. It is called by the builders before save.
	candidate.SkillsScoreValidator = candidateDescSkillsScore.Validators[0].(func(int) error)
	// candidateDescEducationScore is the schema descriptor for education_score field.
	candidateDescEducationScore := candidateFields[6].Descriptor()
	// candidate.EducationScoreValidator is a validator for the "education_score" field. It is called by the builders before save.
	candidate.EducationScoreValidator = candidateDescEducationScore.Validators[0].(func(int) error)
	// candidateDescWeightedScore is the schema descriptor for weighted_score field.
	candidateDescWeightedScore := candidateFields[8].Descriptor()
	// candidate.WeightedScoreValidator is a validator for the "weighted_score" field. It is called by the builders before save.
	candidate.WeightedScoreValidator = candidateDescWeightedScore.Validators[0].(func(int) error)
	// candidateDescStatus is the schema descriptor for status field.
	candidateDescStatus := candidateFields[9].Descriptor()
	// candidate.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	candidate.StatusValidator = candidateDescStatus.Validators[0].(func(string) error)
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[11].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescID is the schema descriptor for id field.
	candidateDescID := candidateFields[0].Descriptor()
	// candidate.DefaultID holds the default value on creation for the id field.
	candidate.DefaultID = candidateDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[1].Descriptor()
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = jobDescTitle.Validators[0].(func(string) error)
	// jobDescDescription is the schema descriptor for description field.
	jobDescDescription := jobFields[2].Descriptor()
	// job.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	job.DescriptionValidator = jobDescDescription.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[3].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[4].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.IDValidator is a validator for the "id" field. It is called by the builders before save.
	job.IDValidator = jobDescID.Validators[0].(func(string) error)
}
