package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/request_models"
	"tradehub/internal/questionnaire"
	"tradehub/internal/repositories"
	"tradehub/pkg/utils"
)

type QuestionServiceInterface interface {
	ResolveForCategory(ctx context.Context, categoryID uuid.UUID) ([]questionnaire.Question, error)
	ListForCategorySlug(ctx context.Context, slug string) ([]questionnaire.Question, error)
	ReplaceForCategorySlug(ctx context.Context, slug string, request request_models.ReplaceQuestionSetRequest) ([]questionnaire.Question, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepository
	categoryRepo repositories.CategoryRepository
	logger       *zap.Logger
}

func NewQuestionService(questionRepo repositories.QuestionRepository, categoryRepo repositories.CategoryRepository, logger *zap.Logger) QuestionServiceInterface {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ResolveForCategory loads a category's ordered question set and maps it onto
// the engine's questions. An empty result is valid and meaningful: it is the
// wizard's job to treat it as a blocking configuration state, not this one's.
func (q *QuestionService) ResolveForCategory(ctx context.Context, categoryID uuid.UUID) ([]questionnaire.Question, error) {
	rows, err := q.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]questionnaire.Question, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEngine())
	}
	return out, nil
}

func (q *QuestionService) ListForCategorySlug(ctx context.Context, slug string) ([]questionnaire.Question, error) {
	category, err := q.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return q.ResolveForCategory(ctx, category.ID)
}

// ReplaceForCategorySlug validates and swaps a category's entire question
// set. Rules may only reference questions earlier in the submitted list, so a
// set can always be evaluated top to bottom; violations come back as
// field-level detail rather than being silently dropped at runtime.
func (q *QuestionService) ReplaceForCategorySlug(ctx context.Context, slug string, request request_models.ReplaceQuestionSetRequest) ([]questionnaire.Question, error) {
	category, err := q.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	rows, engineSet, verr := buildQuestionRows(category.ID, request.Questions)
	if verr != nil {
		return nil, verr
	}

	if err := q.questionRepo.ReplaceForCategory(ctx, category.ID, rows); err != nil {
		return nil, utils.ErrDatabaseError
	}

	q.logger.Info("question set replaced",
		zap.String("category", slug),
		zap.Int("questions", len(rows)))

	return engineSet, nil
}

func buildQuestionRows(categoryID uuid.UUID, inputs []request_models.QuestionInput) ([]db_models.Question, []questionnaire.Question, error) {
	fields := map[string][]string{}
	seen := make(map[string]bool, len(inputs))

	rows := make([]db_models.Question, 0, len(inputs))
	engineSet := make([]questionnaire.Question, 0, len(inputs))

	for i, in := range inputs {
		key := fmt.Sprintf("questions[%d]", i)

		id := uuid.New()
		if in.ID != "" {
			parsed, err := uuid.Parse(in.ID)
			if err != nil {
				fields[key] = append(fields[key], "id is not a valid uuid")
			} else {
				id = parsed
			}
		}

		qt := questionnaire.QuestionType(in.Type)
		if !questionnaire.KnownType(qt) {
			fields[key] = append(fields[key], fmt.Sprintf("unknown question type %q", in.Type))
		}
		if (qt == questionnaire.TypeSingleChoice || qt == questionnaire.TypeMultipleChoice) && len(in.Options) == 0 {
			fields[key] = append(fields[key], "choice questions need at least one option")
		}

		if in.Logic != nil && in.Logic.Enabled {
			if in.Logic.Operator != questionnaire.OperatorAnd && in.Logic.Operator != questionnaire.OperatorOr {
				fields[key] = append(fields[key], fmt.Sprintf("unknown logic operator %q", in.Logic.Operator))
			}
			for _, rule := range in.Logic.Rules {
				if !knownCondition(rule.Condition) {
					fields[key] = append(fields[key], fmt.Sprintf("unknown trigger condition %q", rule.Condition))
				}
				if !seen[rule.ParentQuestionID] {
					fields[key] = append(fields[key], fmt.Sprintf("rule references %q, which is not an earlier question", rule.ParentQuestionID))
				}
			}
		}

		seen[id.String()] = true

		row := db_models.Question{
			CategoryID:  categoryID,
			Text:        in.Text,
			Type:        in.Type,
			IsRequired:  in.IsRequired,
			Position:    i,
			Options:     in.Options,
			Placeholder: in.Placeholder,
			HelpText:    in.HelpText,
			MinValue:    in.MinValue,
			MaxValue:    in.MaxValue,
			Logic:       in.Logic,
		}
		row.ID = id
		rows = append(rows, row)
		engineSet = append(engineSet, row.ToEngine())
	}

	if len(fields) > 0 {
		return nil, nil, &utils.ValidationDetailError{Fields: fields}
	}
	return rows, engineSet, nil
}

func knownCondition(c questionnaire.TriggerCondition) bool {
	switch c {
	case questionnaire.ConditionEquals, questionnaire.ConditionNotEquals,
		questionnaire.ConditionContains, questionnaire.ConditionNotContains,
		questionnaire.ConditionGreaterThan, questionnaire.ConditionLessThan,
		questionnaire.ConditionIsEmpty, questionnaire.ConditionIsNotEmpty:
		return true
	}
	return false
}
