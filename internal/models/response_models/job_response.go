package response_models

type JobResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category,omitempty"`
	State        string   `json:"state"`
	LGA          string   `json:"lga"`
	Address      string   `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Timeline     string   `json:"timeline,omitempty"`
	BudgetType   string   `json:"budget_type,omitempty"`
	BudgetAmount int64    `json:"budget_amount,omitempty"`
	Status       string   `json:"status"`
	PostedAt     string   `json:"posted_at,omitempty"`
}
