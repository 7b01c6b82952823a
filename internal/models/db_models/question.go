package db_models

import (
	"github.com/google/uuid"

	"tradehub/internal/questionnaire"
)

// Question is one admin-authored row of a category's question set. Options
// and conditional logic are stored as JSONB through the engine types so the
// stored shape and the evaluated shape never drift apart.
type Question struct {
	BaseModel
	CategoryID  uuid.UUID                       `gorm:"type:uuid;index"`
	Text        string                          `gorm:"column:question_text;not null"`
	Type        string                          `gorm:"column:question_type;not null"`
	IsRequired  bool
	Position    int                             `gorm:"index"`
	Options     []questionnaire.Option          `gorm:"serializer:json"`
	Placeholder string                          `gorm:"column:placeholder_text"`
	HelpText    string
	MinValue    *int
	MaxValue    *int
	Logic       *questionnaire.ConditionalLogic `gorm:"column:conditional_logic;serializer:json"`
}

// ToEngine maps the stored row onto the questionnaire engine's question.
func (q *Question) ToEngine() questionnaire.Question {
	return questionnaire.Question{
		ID:          q.ID.String(),
		Text:        q.Text,
		Type:        questionnaire.QuestionType(q.Type),
		Required:    q.IsRequired,
		Options:     q.Options,
		Placeholder: q.Placeholder,
		HelpText:    q.HelpText,
		MinValue:    q.MinValue,
		MaxValue:    q.MaxValue,
		Logic:       q.Logic,
	}
}
