package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/response_models"
	"tradehub/internal/questionnaire"
	"tradehub/internal/repositories"
	"tradehub/pkg/utils"
)

// JobForm is the non-questionnaire state the wizard collects across its
// steps. The submission assembler turns it into a Job row.
type JobForm struct {
	Title       string
	Description string

	State     string
	LGA       string
	Address   string
	Latitude  *float64
	Longitude *float64
	Timeline  string

	BudgetType   string
	BudgetAmount int64

	ContactName  string
	ContactEmail string
	ContactPhone string
}

// SubmitJobInput carries everything the assembler needs: the form, the
// active question set and the live answers.
type SubmitJobInput struct {
	PosterID     *uuid.UUID
	CategoryID   *uuid.UUID
	CategoryName string
	Form         JobForm
	Set          []questionnaire.Question
	Answers      *questionnaire.AnswerStore
}

type JobServiceInterface interface {
	Submit(ctx context.Context, input SubmitJobInput) (*response_models.JobResponse, error)
}

type JobService struct {
	jobRepo repositories.JobRepository
	logger  *zap.Logger
}

func NewJobService(jobRepo repositories.JobRepository, logger *zap.Logger) JobServiceInterface {
	return &JobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// Submit assembles and creates the job, then persists the questionnaire
// snapshot as a best-effort secondary write. A snapshot failure never fails
// the submission; the job is already committed at that point.
func (j *JobService) Submit(ctx context.Context, input SubmitJobInput) (*response_models.JobResponse, error) {
	description := input.Form.Description
	if len(input.Set) > 0 && anyNarrativeValue(input.Set, input.Answers) {
		description = questionnaire.BuildNarrative(input.CategoryName, input.Set, input.Answers)
	}

	if verr := validateJobForm(input.Form, description); verr != nil {
		return nil, verr
	}

	job := &db_models.Job{
		PosterID:     input.PosterID,
		CategoryID:   input.CategoryID,
		Title:        input.Form.Title,
		Description:  description,
		State:        input.Form.State,
		LGA:          input.Form.LGA,
		Address:      input.Form.Address,
		Latitude:     input.Form.Latitude,
		Longitude:    input.Form.Longitude,
		Timeline:     input.Form.Timeline,
		BudgetType:   input.Form.BudgetType,
		BudgetAmount: input.Form.BudgetAmount,
		ContactName:  input.Form.ContactName,
		ContactEmail: input.Form.ContactEmail,
		ContactPhone: input.Form.ContactPhone,
		Status:       db_models.JobStatusOpen,
	}

	if err := j.jobRepo.Create(ctx, job); err != nil {
		j.logger.Error("job creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	answers := snapshotAnswers(job.ID, input.Set, input.Answers)
	if err := j.jobRepo.CreateAnswers(ctx, answers); err != nil {
		j.logger.Warn("answer snapshot failed, job already created",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}

	j.logger.Info("job created",
		zap.String("job_id", job.ID.String()),
		zap.String("category", input.CategoryName),
		zap.Int("answers", len(answers)))

	return &response_models.JobResponse{
		ID:           job.ID.String(),
		Title:        job.Title,
		Description:  job.Description,
		Category:     input.CategoryName,
		State:        job.State,
		LGA:          job.LGA,
		Address:      job.Address,
		Latitude:     job.Latitude,
		Longitude:    job.Longitude,
		Timeline:     job.Timeline,
		BudgetType:   job.BudgetType,
		BudgetAmount: job.BudgetAmount,
		Status:       job.Status,
		PostedAt:     utils.FormatRFC3339WAT(utils.FromUnixSecondsWAT(job.CreatedAt)),
	}, nil
}

func anyNarrativeValue(set []questionnaire.Question, answers *questionnaire.AnswerStore) bool {
	for _, q := range set {
		if a, ok := answers.Get(q.ID); ok && questionnaire.HasNarrativeValue(a) {
			return true
		}
	}
	return false
}

func validateJobForm(form JobForm, description string) error {
	fields := map[string][]string{}
	if strings.TrimSpace(form.Title) == "" {
		fields["title"] = append(fields["title"], "title is required")
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = append(fields["description"], "description is required")
	}
	if strings.TrimSpace(form.State) == "" {
		fields["state"] = append(fields["state"], "state is required")
	}
	if strings.TrimSpace(form.LGA) == "" {
		fields["lga"] = append(fields["lga"], "lga is required")
	}
	if strings.TrimSpace(form.ContactName) == "" {
		fields["contact_name"] = append(fields["contact_name"], "contact name is required")
	}
	if strings.TrimSpace(form.ContactEmail) == "" {
		fields["contact_email"] = append(fields["contact_email"], "contact email is required")
	}
	if len(fields) > 0 {
		return &utils.ValidationDetailError{Fields: fields}
	}
	return nil
}

// snapshotAnswers copies every answered question into JobAnswer rows. Raw
// option values go into AnswerValues, the display rendering into AnswerText.
func snapshotAnswers(jobID uuid.UUID, set []questionnaire.Question, answers *questionnaire.AnswerStore) []db_models.JobAnswer {
	out := make([]db_models.JobAnswer, 0, len(set))
	for _, q := range set {
		a, ok := answers.Get(q.ID)
		if !ok || a.IsEmpty() {
			continue
		}

		questionID, err := uuid.Parse(q.ID)
		if err != nil {
			continue
		}

		var values pq.StringArray
		if q.Type == questionnaire.TypeMultipleChoice {
			values = append(values, a.Selections...)
		} else {
			values = pq.StringArray{a.String()}
		}

		out = append(out, db_models.JobAnswer{
			JobID:        jobID,
			QuestionID:   questionID,
			QuestionText: q.Text,
			QuestionType: string(q.Type),
			AnswerValues: values,
			AnswerText:   questionnaire.FormatForDisplay(q, a),
		})
	}
	return out
}
