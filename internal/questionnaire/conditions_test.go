package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logicQuestion(id string, op LogicOperator, rules ...Rule) Question {
	return Question{
		ID:   id,
		Type: TypeTextInput,
		Logic: &ConditionalLogic{
			Enabled:  true,
			Operator: op,
			Rules:    rules,
		},
	}
}

func TestEvaluateUnconditional(t *testing.T) {
	answers := NewAnswerStore(nil)

	assert.True(t, Evaluate(Question{ID: "q1", Type: TypeTextInput}, answers))
	assert.True(t, Evaluate(Question{ID: "q1", Type: TypeTextInput, Logic: &ConditionalLogic{Enabled: false}}, answers))
	assert.True(t, Evaluate(logicQuestion("q1", OperatorAnd), answers), "enabled logic without rules is always visible")
}

func TestEvaluateEquals(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionEquals, TriggerValue: "tiles"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextInput}})
	assert.False(t, Evaluate(q, answers), "empty parent never equals")

	answers.Set("q1", TextAnswer(TypeTextInput, "tiles"))
	assert.True(t, Evaluate(q, answers))

	answers.Set("q1", TextAnswer(TypeTextInput, "Tiles"))
	assert.False(t, Evaluate(q, answers), "equals is case-sensitive")
}

func TestEvaluateEqualsTriggerValuesIntersectsMultiSelect(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd, Rule{
		ParentQuestionID: "q1",
		Condition:        ConditionEquals,
		TriggerValues:    []string{"roof", "gutter"},
	})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeMultipleChoice}})
	assert.False(t, Evaluate(q, answers))

	answers.Set("q1", SelectionAnswer([]string{"fence", "gutter"}))
	assert.True(t, Evaluate(q, answers))

	answers.Set("q1", SelectionAnswer([]string{"fence"}))
	assert.False(t, Evaluate(q, answers))
}

func TestEvaluateNotEquals(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionNotEquals, TriggerValue: "no"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextInput}})
	assert.False(t, Evaluate(q, answers), "empty parent resolves false even for not_equals")

	answers.Set("q1", TextAnswer(TypeTextInput, "yes"))
	assert.True(t, Evaluate(q, answers))

	answers.Set("q1", TextAnswer(TypeTextInput, "no"))
	assert.False(t, Evaluate(q, answers))
}

func TestEvaluateContains(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionContains, TriggerValue: "LEAK"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextArea}})
	answers.Set("q1", TextAnswer(TypeTextArea, "the roof has a leak near the chimney"))
	assert.True(t, Evaluate(q, answers), "contains is case-insensitive")

	answers.Set("q1", TextAnswer(TypeTextArea, "everything is fine"))
	assert.False(t, Evaluate(q, answers))
}

func TestEvaluateNumericComparisons(t *testing.T) {
	gt := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionGreaterThan, TriggerValue: "10"})
	lt := logicQuestion("q3", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionLessThan, TriggerValue: "10"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeNumberInput}})

	answers.Set("q1", TextAnswer(TypeNumberInput, "12"))
	assert.True(t, Evaluate(gt, answers))
	assert.False(t, Evaluate(lt, answers))

	answers.Set("q1", TextAnswer(TypeNumberInput, "3.5"))
	assert.False(t, Evaluate(gt, answers))
	assert.True(t, Evaluate(lt, answers))

	answers.Set("q1", TextAnswer(TypeNumberInput, "a dozen"))
	assert.False(t, Evaluate(gt, answers), "parse failure fails the rule")
	assert.False(t, Evaluate(lt, answers))
}

func TestEvaluateEmptiness(t *testing.T) {
	isEmpty := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionIsEmpty})
	notEmpty := logicQuestion("q3", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: ConditionIsNotEmpty})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeMultipleChoice}})
	assert.True(t, Evaluate(isEmpty, answers))
	assert.False(t, Evaluate(notEmpty, answers))

	answers.Set("q1", SelectionAnswer([]string{"a"}))
	assert.False(t, Evaluate(isEmpty, answers))
	assert.True(t, Evaluate(notEmpty, answers))

	// A parent that is not in the store at all counts as empty too.
	orphan := logicQuestion("q4", OperatorAnd, Rule{ParentQuestionID: "missing", Condition: ConditionIsEmpty})
	assert.True(t, Evaluate(orphan, answers))
}

func TestEvaluateUnknownConditionFailsClosed(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd, Rule{ParentQuestionID: "q1", Condition: "sounds_like", TriggerValue: "x"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextInput}})
	answers.Set("q1", TextAnswer(TypeTextInput, "x"))

	assert.False(t, Evaluate(q, answers))
}

func TestEvaluateOperatorCombination(t *testing.T) {
	rules := []Rule{
		{ParentQuestionID: "q1", Condition: ConditionEquals, TriggerValue: "true"},
		{ParentQuestionID: "q2", Condition: ConditionIsNotEmpty},
	}

	answers := NewAnswerStore([]Question{
		{ID: "q1", Type: TypeYesNo},
		{ID: "q2", Type: TypeMultipleChoice},
	})
	answers.Set("q2", SelectionAnswer([]string{"a"}))

	// q1 defaults to false, so only the second rule holds.
	assert.True(t, Evaluate(logicQuestion("q3", OperatorOr, rules...), answers))
	assert.False(t, Evaluate(logicQuestion("q3", OperatorAnd, rules...), answers))
}

// An OR question over a yes/no parent and a multi-select parent becomes
// visible as soon as either side fires.
func TestEvaluateOrChainOverMixedParents(t *testing.T) {
	q3 := logicQuestion("q3", OperatorOr,
		Rule{ParentQuestionID: "q1", Condition: ConditionEquals, TriggerValue: "true"},
		Rule{ParentQuestionID: "q2", Condition: ConditionIsNotEmpty},
	)

	answers := NewAnswerStore([]Question{
		{ID: "q1", Type: TypeYesNo},
		{ID: "q2", Type: TypeMultipleChoice},
	})
	require.False(t, Evaluate(q3, answers))

	answers.Set("q2", SelectionAnswer([]string{"a"}))
	assert.True(t, Evaluate(q3, answers), "selecting on q2 reveals q3 without touching q1")
}

func TestEvaluateIsIdempotent(t *testing.T) {
	q := logicQuestion("q2", OperatorAnd,
		Rule{ParentQuestionID: "q1", Condition: ConditionContains, TriggerValue: "leak"},
	)
	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextArea}})
	answers.Set("q1", TextAnswer(TypeTextArea, "leaking roof"))

	first := Evaluate(q, answers)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Evaluate(q, answers))
	}
}

// Adding a rule under AND can only shrink the visible set.
func TestEvaluateAndRulesNarrow(t *testing.T) {
	base := []Rule{{ParentQuestionID: "q1", Condition: ConditionIsNotEmpty}}
	extra := append(append([]Rule{}, base...), Rule{ParentQuestionID: "q1", Condition: ConditionEquals, TriggerValue: "never"})

	answers := NewAnswerStore([]Question{{ID: "q1", Type: TypeTextInput}})
	for _, value := range []string{"", "something", "never"} {
		answers.Set("q1", TextAnswer(TypeTextInput, value))
		wide := Evaluate(logicQuestion("q2", OperatorAnd, base...), answers)
		narrow := Evaluate(logicQuestion("q2", OperatorAnd, extra...), answers)
		if narrow {
			assert.True(t, wide, "value %q: extra AND rule widened visibility", value)
		}
	}
}
