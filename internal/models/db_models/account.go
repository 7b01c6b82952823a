package db_models

const (
	RoleHomeowner    = "homeowner"
	RoleTradesperson = "tradesperson"
	RoleAdmin        = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	Phone        string
	PasswordHash string
	Role         string `gorm:"default:homeowner"`

	Jobs []Job `gorm:"foreignKey:PosterID"`
}
