package questionnaire

import (
	"strconv"
	"strings"
)

// Evaluate decides whether a question should be visible given the current
// answers. It is pure: safe to re-run on every answer mutation.
func Evaluate(q Question, answers *AnswerStore) bool {
	logic := q.Logic
	if logic == nil || !logic.Enabled || len(logic.Rules) == 0 {
		return true
	}

	if logic.Operator == OperatorOr {
		for _, rule := range logic.Rules {
			if evaluateRule(rule, answers) {
				return true
			}
		}
		return false
	}

	for _, rule := range logic.Rules {
		if !evaluateRule(rule, answers) {
			return false
		}
	}
	return true
}

// evaluateRule resolves one rule against the parent question's answer.
// Unknown conditions fail closed.
func evaluateRule(rule Rule, answers *AnswerStore) bool {
	parent, ok := answers.Get(rule.ParentQuestionID)
	empty := !ok || parent.IsEmpty()

	switch rule.Condition {
	case ConditionIsEmpty:
		return empty
	case ConditionIsNotEmpty:
		return !empty
	}

	// Every remaining condition needs a concrete parent value.
	if empty {
		return false
	}

	switch rule.Condition {
	case ConditionEquals:
		return matchesAny(parent, rule)
	case ConditionNotEquals:
		return !matchesAny(parent, rule)
	case ConditionContains:
		return strings.Contains(strings.ToLower(parent.String()), strings.ToLower(rule.TriggerValue))
	case ConditionNotContains:
		return !strings.Contains(strings.ToLower(parent.String()), strings.ToLower(rule.TriggerValue))
	case ConditionGreaterThan:
		got, want, ok := numericPair(parent, rule)
		return ok && got > want
	case ConditionLessThan:
		got, want, ok := numericPair(parent, rule)
		return ok && got < want
	}

	return false
}

// matchesAny implements the equals comparison. With trigger_values present
// the parent's value set only needs to intersect them; otherwise a single
// case-sensitive comparison on the stringified answer.
func matchesAny(parent Answer, rule Rule) bool {
	if len(rule.TriggerValues) > 0 {
		for _, want := range rule.TriggerValues {
			for _, got := range parent.values() {
				if got == want {
					return true
				}
			}
		}
		return false
	}
	return parent.String() == rule.TriggerValue
}

func numericPair(parent Answer, rule Rule) (got float64, want float64, ok bool) {
	got, err := strconv.ParseFloat(strings.TrimSpace(parent.String()), 64)
	if err != nil {
		return 0, 0, false
	}
	want, err = strconv.ParseFloat(strings.TrimSpace(rule.TriggerValue), 64)
	if err != nil {
		return 0, 0, false
	}
	return got, want, true
}
