package db_models

// TradeCategory is one trade a job can be posted under, e.g. plumbing or
// tiling. Each category owns an ordered question set.
type TradeCategory struct {
	BaseModel
	Name        string `gorm:"unique;not null"`
	Slug        string `gorm:"unique;not null"`
	Description string
	IsActive    bool `gorm:"default:true"`

	Questions []Question `gorm:"foreignKey:CategoryID"`
}
