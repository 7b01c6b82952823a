package questionnaire

import (
	"fmt"
	"strings"
)

// FormatForDisplay renders an answer as the text a reader should see: the
// matching option text for choice questions, Yes/No for booleans, and the
// raw value otherwise. Used both for the recap panel and for narrative
// generation.
func FormatForDisplay(q Question, a Answer) string {
	switch q.Type {
	case TypeSingleChoice:
		return q.OptionText(a.Text)
	case TypeMultipleChoice:
		texts := make([]string, 0, len(a.Selections))
		for _, value := range a.Selections {
			texts = append(texts, q.OptionText(value))
		}
		return strings.Join(texts, ", ")
	case TypeYesNo:
		if a.YesNo != nil && *a.YesNo {
			return "Yes"
		}
		return "No"
	default:
		return a.Text
	}
}

// HasNarrativeValue reports whether an answer contributes a line to the
// generated description. This mirrors the posting form's truthiness check:
// empty strings and empty selections are skipped, and so is a yes/no answer
// of false, which means a "No" never appears in the narrative.
func HasNarrativeValue(a Answer) bool {
	switch a.Kind {
	case TypeYesNo:
		return a.YesNo != nil && *a.YesNo
	case TypeMultipleChoice:
		return len(a.Selections) > 0
	default:
		return a.Text != ""
	}
}

// BuildNarrative synthesises a job description from the answered questions,
// one "question: answer" block per question, blank-line separated. When no
// question carries a value it falls back to a generic line naming the
// category so the job still has a description.
func BuildNarrative(category string, set []Question, answers *AnswerStore) string {
	blocks := make([]string, 0, len(set))
	for _, q := range set {
		a, ok := answers.Get(q.ID)
		if !ok || !HasNarrativeValue(a) {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s: %s", q.Text, FormatForDisplay(q, a)))
	}

	if len(blocks) == 0 {
		return fmt.Sprintf("%s work requested. Details provided through structured questions.", category)
	}
	return strings.Join(blocks, "\n\n")
}
