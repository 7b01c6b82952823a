package questionnaire

// Navigator tracks which visible question is currently presented in the
// one-by-one flow. The visible sequence it indexes into can change size on
// every answer mutation, so callers must Reclamp after each change.
type Navigator struct {
	index int
}

// Index returns the current position within the visible sequence.
func (n *Navigator) Index() int {
	return n.index
}

// Reset returns to the first question, used when the category changes or a
// question set is re-resolved.
func (n *Navigator) Reset() {
	n.index = 0
}

// Current returns the presented question, or false when the visible
// sequence is empty.
func (n *Navigator) Current(visible []Question) (Question, bool) {
	if len(visible) == 0 || n.index >= len(visible) {
		return Question{}, false
	}
	return visible[n.index], true
}

// AtLast reports whether the navigator sits on the final visible question.
// An empty sequence counts as last so the wizard step can take over.
func (n *Navigator) AtLast(visible []Question) bool {
	return n.index >= len(visible)-1
}

// Advance moves to the next visible question and reports whether it moved.
// Returning false from the last question signals "advance the wizard step"
// to the caller. Validation is the caller's job; Advance never inspects
// answers.
func (n *Navigator) Advance(visible []Question) bool {
	if n.index < len(visible)-1 {
		n.index++
		return true
	}
	return false
}

// Retreat moves back one question if possible. Going backwards is never
// gated by validation.
func (n *Navigator) Retreat() bool {
	if n.index > 0 {
		n.index--
		return true
	}
	return false
}

// Reclamp forces the index back into [0, len(visible)) after the visible
// set shrinks, and pins it to 0 when nothing is visible.
func (n *Navigator) Reclamp(visible []Question) {
	if len(visible) == 0 {
		n.index = 0
		return
	}
	if n.index >= len(visible) {
		n.index = len(visible) - 1
	}
	if n.index < 0 {
		n.index = 0
	}
}
