package db_models

import "github.com/google/uuid"

// State is a top-level location entry; jobs are posted against a state and
// one of its local government areas.
type State struct {
	BaseModel
	Name string `gorm:"unique;not null"`
	Code string `gorm:"unique"`
	LGAs []LGA  `gorm:"foreignKey:StateID"`
}

type LGA struct {
	BaseModel
	Name    string    `gorm:"not null"`
	StateID uuid.UUID `gorm:"type:uuid;index"`
}
