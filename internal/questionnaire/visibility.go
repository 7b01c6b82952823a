package questionnaire

// Visible filters a question set down to the questions whose conditional
// logic currently passes, preserving authored order. It always recomputes
// from scratch: one answer change can flip several dependent questions at
// once, including chains, so incremental patching is not attempted. A
// hidden parent still participates in rule evaluation with whatever value
// remains in the store.
func Visible(set []Question, answers *AnswerStore) []Question {
	visible := make([]Question, 0, len(set))
	for _, q := range set {
		if Evaluate(q, answers) {
			visible = append(visible, q)
		}
	}
	return visible
}
