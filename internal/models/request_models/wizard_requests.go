package request_models

// StartWizardRequest opens a posting session. Category is optional; it can
// also be chosen later through SelectCategoryRequest.
type StartWizardRequest struct {
	Category string `json:"category"`
}

type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// ApplyAnswerRequest carries one answer mutation. Exactly one of the value
// fields is read, picked by the question's type.
type ApplyAnswerRequest struct {
	QuestionID string   `json:"question_id" binding:"required"`
	Value      string   `json:"value"`
	BoolValue  *bool    `json:"bool_value"`
	Values     []string `json:"values"`
}

// UpdateFormRequest patches the non-questionnaire wizard fields. Nil
// pointers leave the current value untouched.
type UpdateFormRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	State        *string  `json:"state"`
	LGA          *string  `json:"lga"`
	Address      *string  `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Timeline     *string  `json:"timeline"`
	BudgetType   *string  `json:"budget_type"`
	BudgetAmount *int64   `json:"budget_amount"`
	ContactName  *string  `json:"contact_name"`
	ContactEmail *string  `json:"contact_email"`
	ContactPhone *string  `json:"contact_phone"`
}

const (
	AccountChoiceCreate = "create_account"
	AccountChoiceSignIn = "sign_in"
)

type AccountChoiceRequest struct {
	Choice string `json:"choice" binding:"required,oneof=create_account sign_in"`
}

// CreateAccountStepRequest is step 5 of the guest wizard: make the account,
// then submit the job under it.
type CreateAccountStepRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Password    string `json:"password" binding:"required,min=6"`
}
