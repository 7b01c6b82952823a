package questionnaire

import "strings"

// RequiredAndUnanswered reports whether a required question is still
// missing an answer. Optional questions never fail.
//
// Because DefaultAnswer seeds yes/no questions to an explicit false, a
// required yes/no question can never block progression; the untouched
// default reads as "No". That matches the posting form this replaces and
// is covered by tests rather than corrected here.
func RequiredAndUnanswered(q Question, a Answer) bool {
	if !q.Required {
		return false
	}

	switch q.Type {
	case TypeMultipleChoice:
		return len(a.Selections) == 0
	case TypeYesNo:
		return a.YesNo == nil
	default:
		return strings.TrimSpace(a.Text) == ""
	}
}
