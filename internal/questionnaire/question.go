package questionnaire

// QuestionType enumerates the input kinds an admin can author for a trade
// category. Validation, formatting and default answers all branch on it.
type QuestionType string

const (
	TypeTextInput      QuestionType = "text_input"
	TypeTextArea       QuestionType = "text_area"
	TypeNumberInput    QuestionType = "number_input"
	TypeYesNo          QuestionType = "yes_no"
	TypeSingleChoice   QuestionType = "multiple_choice_single"
	TypeMultipleChoice QuestionType = "multiple_choice_multiple"
)

// KnownType reports whether t is one of the supported question types.
func KnownType(t QuestionType) bool {
	switch t {
	case TypeTextInput, TypeTextArea, TypeNumberInput, TypeYesNo, TypeSingleChoice, TypeMultipleChoice:
		return true
	}
	return false
}

// Option is one selectable choice of a multiple-choice question. Value is
// what gets stored, Text is what the poster sees.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

type TriggerCondition string

const (
	ConditionEquals      TriggerCondition = "equals"
	ConditionNotEquals   TriggerCondition = "not_equals"
	ConditionContains    TriggerCondition = "contains"
	ConditionNotContains TriggerCondition = "not_contains"
	ConditionGreaterThan TriggerCondition = "greater_than"
	ConditionLessThan    TriggerCondition = "less_than"
	ConditionIsEmpty     TriggerCondition = "is_empty"
	ConditionIsNotEmpty  TriggerCondition = "is_not_empty"
)

type LogicOperator string

const (
	OperatorAnd LogicOperator = "AND"
	OperatorOr  LogicOperator = "OR"
)

// Rule ties a question's visibility to the answer of an earlier question.
// TriggerValues, when present, wins over TriggerValue for equals/not_equals
// so multi-select parents can be matched by intersection.
type Rule struct {
	ParentQuestionID string           `json:"parent_question_id"`
	Condition        TriggerCondition `json:"trigger_condition"`
	TriggerValue     string           `json:"trigger_value,omitempty"`
	TriggerValues    []string         `json:"trigger_values,omitempty"`
}

// ConditionalLogic controls runtime visibility of a question. A nil or
// disabled logic block means the question is always shown.
type ConditionalLogic struct {
	Enabled  bool          `json:"enabled"`
	Operator LogicOperator `json:"logic_operator"`
	Rules    []Rule        `json:"rules"`
}

// Question is one admin-authored entry of a category's question set.
type Question struct {
	ID          string            `json:"id"`
	Text        string            `json:"question_text"`
	Type        QuestionType      `json:"question_type"`
	Required    bool              `json:"is_required"`
	Options     []Option          `json:"options,omitempty"`
	Placeholder string            `json:"placeholder_text,omitempty"`
	HelpText    string            `json:"help_text,omitempty"`
	MinValue    *int              `json:"min_value,omitempty"`
	MaxValue    *int              `json:"max_value,omitempty"`
	Logic       *ConditionalLogic `json:"conditional_logic,omitempty"`
}

// OptionText resolves a stored option value to its display text, falling
// back to the raw value when the option no longer exists.
func (q Question) OptionText(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Text
		}
	}
	return value
}
