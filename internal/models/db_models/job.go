package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	JobStatusOpen      = "open"
	JobStatusAssigned  = "assigned"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

const (
	BudgetFixed      = "fixed"
	BudgetRange      = "range"
	BudgetNegotiable = "negotiable"
)

type Job struct {
	BaseModel
	PosterID   *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`

	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`

	State     string
	LGA       string
	Address   string
	Latitude  *float64
	Longitude *float64
	Timeline  string

	BudgetType   string
	BudgetAmount int64 // minor units

	ContactName  string
	ContactEmail string
	ContactPhone string

	Status string `gorm:"default:open"`

	Answers []JobAnswer `gorm:"foreignKey:JobID"`
}

// JobAnswer snapshots one questionnaire answer at submission time. The
// question text and type are copied in so edits to the question set never
// rewrite history. Multi-select values keep their raw option values in
// AnswerValues while AnswerText carries the display rendering.
type JobAnswer struct {
	BaseModel
	JobID        uuid.UUID `gorm:"type:uuid;index"`
	QuestionID   uuid.UUID `gorm:"type:uuid"`
	QuestionText string
	QuestionType string
	AnswerValues pq.StringArray `gorm:"type:text[]"`
	AnswerText   string
}
