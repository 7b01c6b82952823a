package response_models

// QuestionView is the wire rendering of one engine question.
type QuestionView struct {
	ID          string       `json:"id"`
	Text        string       `json:"question_text"`
	Type        string       `json:"question_type"`
	IsRequired  bool         `json:"is_required"`
	Options     []OptionView `json:"options,omitempty"`
	Placeholder string       `json:"placeholder_text,omitempty"`
	HelpText    string       `json:"help_text,omitempty"`
	MinValue    *int         `json:"min_value,omitempty"`
	MaxValue    *int         `json:"max_value,omitempty"`
}

type OptionView struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// AnswerRecap is a previously answered question rendered for the recap
// panel: the display text, not raw option values.
type AnswerRecap struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Display      string `json:"display"`
}

// WizardStateResponse is the full snapshot the client renders after every
// wizard mutation.
type WizardStateResponse struct {
	SessionID   string `json:"session_id"`
	CurrentStep int    `json:"current_step"`
	TotalSteps  int    `json:"total_steps"`
	Category    string `json:"category,omitempty"`

	VisibleQuestions []QuestionView    `json:"visible_questions"`
	QuestionIndex    int               `json:"question_index"`
	CurrentQuestion  *QuestionView     `json:"current_question,omitempty"`
	Recap            []AnswerRecap     `json:"recap,omitempty"`
	FieldErrors      map[string]string `json:"field_errors,omitempty"`

	AwaitingAccountChoice bool `json:"awaiting_account_choice,omitempty"`
	AwaitingSignIn        bool `json:"awaiting_sign_in,omitempty"`

	// Set when the final gate fired and the job was created.
	Job *JobResponse `json:"job,omitempty"`
}
