package services

import (
	"context"

	"github.com/google/uuid"

	"tradehub/internal/models/db_models"
	"tradehub/internal/questionnaire"
)

// In-memory repository fakes shared by the service tests.

type fakeCategoryRepo struct {
	categories []db_models.TradeCategory
}

func (f *fakeCategoryRepo) ListActive(ctx context.Context) ([]db_models.TradeCategory, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*db_models.TradeCategory, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

type fakeQuestionRepo struct {
	byCategory map[uuid.UUID][]db_models.Question
	listErr    error
	replaced   map[uuid.UUID][]db_models.Question
}

func (f *fakeQuestionRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byCategory[categoryID], nil
}

func (f *fakeQuestionRepo) ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, questions []db_models.Question) error {
	if f.replaced == nil {
		f.replaced = map[uuid.UUID][]db_models.Question{}
	}
	f.replaced[categoryID] = questions
	if f.byCategory == nil {
		f.byCategory = map[uuid.UUID][]db_models.Question{}
	}
	f.byCategory[categoryID] = questions
	return nil
}

type fakeAccountRepo struct {
	accounts []*db_models.Account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakeJobRepo struct {
	jobs       []*db_models.Job
	answers    []db_models.JobAnswer
	createErr  error
	answersErr error
}

func (f *fakeJobRepo) Create(ctx context.Context, job *db_models.Job) error {
	if f.createErr != nil {
		return f.createErr
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) CreateAnswers(ctx context.Context, answers []db_models.JobAnswer) error {
	if f.answersErr != nil {
		return f.answersErr
	}
	f.answers = append(f.answers, answers...)
	return nil
}

func dbQuestion(categoryID uuid.UUID, position int, text string, qt questionnaire.QuestionType, required bool, options []questionnaire.Option, logic *questionnaire.ConditionalLogic) db_models.Question {
	q := db_models.Question{
		CategoryID: categoryID,
		Text:       text,
		Type:       string(qt),
		IsRequired: required,
		Position:   position,
		Options:    options,
		Logic:      logic,
	}
	q.ID = uuid.New()
	return q
}
