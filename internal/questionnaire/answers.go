package questionnaire

import "strings"

// Answer holds the current value for one question. Exactly one of the value
// fields is meaningful, selected by Kind.
type Answer struct {
	Kind       QuestionType
	Text       string
	YesNo      *bool
	Selections []string
}

// DefaultAnswer seeds the type-appropriate zero value for a question.
// Yes/no questions are deliberately seeded to an explicit false, matching
// the posting form's historical behaviour: a poster who never touches a
// yes/no question is recorded as having answered "No".
func DefaultAnswer(t QuestionType) Answer {
	switch t {
	case TypeYesNo:
		v := false
		return Answer{Kind: t, YesNo: &v}
	case TypeMultipleChoice:
		return Answer{Kind: t, Selections: []string{}}
	default:
		return Answer{Kind: t, Text: ""}
	}
}

// TextAnswer builds an answer for text, number and single-choice questions.
func TextAnswer(t QuestionType, value string) Answer {
	return Answer{Kind: t, Text: value}
}

// YesNoAnswer builds an explicit yes/no answer.
func YesNoAnswer(value bool) Answer {
	return Answer{Kind: TypeYesNo, YesNo: &value}
}

// SelectionAnswer builds a multi-select answer.
func SelectionAnswer(values []string) Answer {
	if values == nil {
		values = []string{}
	}
	return Answer{Kind: TypeMultipleChoice, Selections: values}
}

// IsEmpty reports whether the answer counts as empty for conditional-logic
// purposes: blank string, nil value or empty selection set. A seeded false
// on a yes/no question stringifies to "false" and is not empty.
func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case TypeYesNo:
		return a.YesNo == nil
	case TypeMultipleChoice:
		return len(a.Selections) == 0
	default:
		return strings.TrimSpace(a.Text) == ""
	}
}

// String flattens the answer to the representation rule comparisons run on.
func (a Answer) String() string {
	switch a.Kind {
	case TypeYesNo:
		if a.YesNo == nil {
			return ""
		}
		if *a.YesNo {
			return "true"
		}
		return "false"
	case TypeMultipleChoice:
		return strings.Join(a.Selections, ", ")
	default:
		return a.Text
	}
}

// values returns the answer as a value set for intersection matching.
func (a Answer) values() []string {
	if a.Kind == TypeMultipleChoice {
		return a.Selections
	}
	if s := a.String(); s != "" {
		return []string{s}
	}
	return nil
}

// AnswerStore keeps the live answer for every question in the active set.
// It is plain data; recomputation and clamping are driven from outside.
type AnswerStore struct {
	values map[string]Answer
}

// NewAnswerStore seeds defaults for every question in the set.
func NewAnswerStore(set []Question) *AnswerStore {
	s := &AnswerStore{values: make(map[string]Answer, len(set))}
	for _, q := range set {
		s.values[q.ID] = DefaultAnswer(q.Type)
	}
	return s
}

// Get returns the stored answer for a question id. Unknown ids come back
// as an empty, kind-less answer so rule evaluation treats them as unset.
func (s *AnswerStore) Get(questionID string) (Answer, bool) {
	if s == nil || s.values == nil {
		return Answer{}, false
	}
	a, ok := s.values[questionID]
	return a, ok
}

// Set replaces the answer for a question id.
func (s *AnswerStore) Set(questionID string, a Answer) {
	if s.values == nil {
		s.values = make(map[string]Answer)
	}
	s.values[questionID] = a
}

// Reset discards all answers and reseeds defaults for a new question set.
func (s *AnswerStore) Reset(set []Question) {
	s.values = make(map[string]Answer, len(set))
	for _, q := range set {
		s.values[q.ID] = DefaultAnswer(q.Type)
	}
}

// Len reports how many answers are currently held.
func (s *AnswerStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}
