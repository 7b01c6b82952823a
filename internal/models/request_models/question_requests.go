package request_models

import "tradehub/internal/questionnaire"

// QuestionInput is one authored question in a replace-question-set payload.
// The id is optional; omitted ids are assigned server side. Rules may only
// reference questions earlier in the list.
type QuestionInput struct {
	ID          string                          `json:"id"`
	Text        string                          `json:"question_text" binding:"required"`
	Type        string                          `json:"question_type" binding:"required"`
	IsRequired  bool                            `json:"is_required"`
	Options     []questionnaire.Option          `json:"options"`
	Placeholder string                          `json:"placeholder_text"`
	HelpText    string                          `json:"help_text"`
	MinValue    *int                            `json:"min_value"`
	MaxValue    *int                            `json:"max_value"`
	Logic       *questionnaire.ConditionalLogic `json:"conditional_logic"`
}

type ReplaceQuestionSetRequest struct {
	Questions []QuestionInput `json:"questions" binding:"required"`
}
