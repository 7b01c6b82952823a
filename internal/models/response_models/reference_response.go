package response_models

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type StateResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type LGAResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StateID string `json:"state_id"`
}
