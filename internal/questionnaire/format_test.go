package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var paintQuestion = Question{
	ID:   "surface",
	Text: "Which surfaces need painting?",
	Type: TypeMultipleChoice,
	Options: []Option{
		{Value: "a", Text: "Alpha"},
		{Value: "b", Text: "Beta"},
	},
}

func TestFormatForDisplaySingleChoice(t *testing.T) {
	q := Question{
		ID:      "finish",
		Type:    TypeSingleChoice,
		Options: []Option{{Value: "matte", Text: "Matte finish"}, {Value: "gloss", Text: "Gloss finish"}},
	}

	assert.Equal(t, "Matte finish", FormatForDisplay(q, TextAnswer(TypeSingleChoice, "matte")))
	assert.Equal(t, "satin", FormatForDisplay(q, TextAnswer(TypeSingleChoice, "satin")), "unknown value falls back to raw")
}

func TestFormatForDisplayMultiChoice(t *testing.T) {
	assert.Equal(t, "Alpha", FormatForDisplay(paintQuestion, SelectionAnswer([]string{"a"})))
	assert.Equal(t, "Alpha, Beta", FormatForDisplay(paintQuestion, SelectionAnswer([]string{"a", "b"})))
	assert.Equal(t, "Alpha, zinc", FormatForDisplay(paintQuestion, SelectionAnswer([]string{"a", "zinc"})))
}

func TestFormatForDisplayYesNo(t *testing.T) {
	q := Question{ID: "urgent", Type: TypeYesNo}

	assert.Equal(t, "Yes", FormatForDisplay(q, YesNoAnswer(true)))
	assert.Equal(t, "No", FormatForDisplay(q, YesNoAnswer(false)))
	assert.Equal(t, "No", FormatForDisplay(q, Answer{Kind: TypeYesNo}))
}

func TestFormatForDisplayRoundTripsOptionText(t *testing.T) {
	// Any value selected from the options must render as its text, never
	// the stored value.
	for _, opt := range paintQuestion.Options {
		got := FormatForDisplay(paintQuestion, SelectionAnswer([]string{opt.Value}))
		assert.Equal(t, opt.Text, got)
		assert.NotEqual(t, opt.Value, got)
	}
}

func TestBuildNarrativeSingleAnsweredQuestion(t *testing.T) {
	set := []Question{
		{ID: "q1", Text: "Is the job urgent?", Type: TypeYesNo, Required: true},
		paintQuestion,
		{ID: "q3", Text: "Anything else?", Type: TypeTextArea},
	}
	answers := NewAnswerStore(set)
	answers.Set("surface", SelectionAnswer([]string{"a"}))

	// q1 sits at its seeded false and q3 is blank, so the narrative is a
	// single line for the multi-select.
	assert.Equal(t, "Which surfaces need painting?: Alpha", BuildNarrative("Painting", set, answers))
}

func TestBuildNarrativeJoinsBlocksWithBlankLine(t *testing.T) {
	set := []Question{
		{ID: "q1", Text: "Is the job urgent?", Type: TypeYesNo},
		{ID: "q2", Text: "Describe the damage", Type: TypeTextArea},
	}
	answers := NewAnswerStore(set)
	answers.Set("q1", YesNoAnswer(true))
	answers.Set("q2", TextAnswer(TypeTextArea, "Cracked wall in the hallway"))

	want := "Is the job urgent?: Yes\n\nDescribe the damage: Cracked wall in the hallway"
	assert.Equal(t, want, BuildNarrative("Plastering", set, answers))
}

func TestBuildNarrativeFallsBackWhenNothingAnswered(t *testing.T) {
	set := []Question{
		{ID: "q1", Text: "Is the job urgent?", Type: TypeYesNo},
		{ID: "q2", Text: "Anything else?", Type: TypeTextArea},
	}
	answers := NewAnswerStore(set)

	got := BuildNarrative("Tiling", set, answers)
	assert.Equal(t, "Tiling work requested. Details provided through structured questions.", got)
}
