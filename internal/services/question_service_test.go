package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/request_models"
	"tradehub/internal/questionnaire"
	"tradehub/pkg/utils"
)

func questionTestEnv() (*fakeQuestionRepo, *fakeCategoryRepo, QuestionServiceInterface, uuid.UUID) {
	questionRepo := &fakeQuestionRepo{byCategory: map[uuid.UUID][]db_models.Question{}}
	category := db_models.TradeCategory{Name: "Painting", Slug: "painting", IsActive: true}
	category.ID = uuid.New()
	categoryRepo := &fakeCategoryRepo{categories: []db_models.TradeCategory{category}}
	service := NewQuestionService(questionRepo, categoryRepo, zap.NewNop())
	return questionRepo, categoryRepo, service, category.ID
}

func TestResolveForCategoryMapsRowsInOrder(t *testing.T) {
	questionRepo, _, service, categoryID := questionTestEnv()
	questionRepo.byCategory[categoryID] = []db_models.Question{
		dbQuestion(categoryID, 0, "What needs painting?", questionnaire.TypeTextInput, true, nil, nil),
		dbQuestion(categoryID, 1, "Interior or exterior?", questionnaire.TypeSingleChoice, true, []questionnaire.Option{
			{Value: "in", Text: "Interior"},
			{Value: "out", Text: "Exterior"},
		}, nil),
	}

	set, err := service.ResolveForCategory(context.Background(), categoryID)
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "What needs painting?", set[0].Text)
	assert.Equal(t, questionnaire.TypeSingleChoice, set[1].Type)
	assert.Equal(t, "Interior", set[1].OptionText("in"))
}

func TestListForUnknownCategorySlug(t *testing.T) {
	_, _, service, _ := questionTestEnv()
	_, err := service.ListForCategorySlug(context.Background(), "welding")
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestReplaceAcceptsBackwardRuleReferences(t *testing.T) {
	questionRepo, _, service, categoryID := questionTestEnv()

	parentID := uuid.New().String()
	set, err := service.ReplaceForCategorySlug(context.Background(), "painting", request_models.ReplaceQuestionSetRequest{
		Questions: []request_models.QuestionInput{
			{ID: parentID, Text: "Interior work?", Type: string(questionnaire.TypeYesNo), IsRequired: true},
			{Text: "Which rooms?", Type: string(questionnaire.TypeTextInput), Logic: &questionnaire.ConditionalLogic{
				Enabled:  true,
				Operator: questionnaire.OperatorAnd,
				Rules: []questionnaire.Rule{
					{ParentQuestionID: parentID, Condition: questionnaire.ConditionEquals, TriggerValue: "true"},
				},
			}},
		},
	})
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, parentID, set[0].ID)

	stored := questionRepo.replaced[categoryID]
	require.Len(t, stored, 2)
	assert.Equal(t, 0, stored[0].Position)
	assert.Equal(t, 1, stored[1].Position)
}

func TestReplaceRejectsForwardRuleReference(t *testing.T) {
	_, _, service, _ := questionTestEnv()

	laterID := uuid.New().String()
	_, err := service.ReplaceForCategorySlug(context.Background(), "painting", request_models.ReplaceQuestionSetRequest{
		Questions: []request_models.QuestionInput{
			{Text: "Which rooms?", Type: string(questionnaire.TypeTextInput), Logic: &questionnaire.ConditionalLogic{
				Enabled:  true,
				Operator: questionnaire.OperatorAnd,
				Rules: []questionnaire.Rule{
					{ParentQuestionID: laterID, Condition: questionnaire.ConditionEquals, TriggerValue: "true"},
				},
			}},
			{ID: laterID, Text: "Interior work?", Type: string(questionnaire.TypeYesNo)},
		},
	})
	require.Error(t, err)

	var detail *utils.ValidationDetailError
	require.ErrorAs(t, err, &detail)
	assert.Contains(t, detail.Fields, "questions[0]")
}

func TestReplaceRejectsUnknownTypesAndConditions(t *testing.T) {
	_, _, service, _ := questionTestEnv()

	parentID := uuid.New().String()
	_, err := service.ReplaceForCategorySlug(context.Background(), "painting", request_models.ReplaceQuestionSetRequest{
		Questions: []request_models.QuestionInput{
			{ID: parentID, Text: "Interior work?", Type: "toggle"},
			{Text: "Which rooms?", Type: string(questionnaire.TypeTextInput), Logic: &questionnaire.ConditionalLogic{
				Enabled:  true,
				Operator: questionnaire.OperatorAnd,
				Rules: []questionnaire.Rule{
					{ParentQuestionID: parentID, Condition: "sounds_like", TriggerValue: "x"},
				},
			}},
		},
	})
	require.Error(t, err)

	var detail *utils.ValidationDetailError
	require.ErrorAs(t, err, &detail)
	assert.Contains(t, detail.Fields, "questions[0]")
	assert.Contains(t, detail.Fields, "questions[1]")
}

func TestReplaceRequiresOptionsForChoiceQuestions(t *testing.T) {
	_, _, service, _ := questionTestEnv()

	_, err := service.ReplaceForCategorySlug(context.Background(), "painting", request_models.ReplaceQuestionSetRequest{
		Questions: []request_models.QuestionInput{
			{Text: "Interior or exterior?", Type: string(questionnaire.TypeSingleChoice)},
		},
	})
	require.Error(t, err)

	var detail *utils.ValidationDetailError
	require.ErrorAs(t, err, &detail)
	assert.Contains(t, detail.Fields["questions[0]"][0], "option")
}
