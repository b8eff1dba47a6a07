package field

// Phase is the combined focus and dropdown state of the field. Modeling
// the pair as one value keeps impossible combinations (a dropdown open on
// a blurred field) unrepresentable.
type Phase int

const (
	// PhaseBlurred means the field has no keyboard focus and no dropdown.
	PhaseBlurred Phase = iota
	// PhaseFocused means the field has focus but the dropdown was
	// explicitly dismissed. Typing reopens it.
	PhaseFocused
	// PhaseSuggesting means the field has focus and the dropdown is open.
	PhaseSuggesting
)

func (p Phase) String() string {
	switch p {
	case PhaseBlurred:
		return "blurred"
	case PhaseFocused:
		return "focused"
	case PhaseSuggesting:
		return "suggesting"
	default:
		return "unknown"
	}
}

// phaseEvent enumerates everything that can move the field between phases.
type phaseEvent int

const (
	eventFocus phaseEvent = iota // keyboard focus gained
	eventBlur                    // keyboard focus lost
	eventDismiss                 // user closed the dropdown, focus kept
	eventSelect                  // suggestion confirmed
	eventTypedText               // text change to a non-empty value
	eventClearedText             // text change to an empty value
)

// transition is the single place phase changes happen. Unlisted pairs
// keep the current phase: clearing the input preserves the dismissal
// intent, so after an explicit dismiss only typing reopens the dropdown.
func transition(p Phase, ev phaseEvent) Phase {
	switch ev {
	case eventFocus:
		if p == PhaseBlurred {
			return PhaseSuggesting
		}
	case eventBlur, eventSelect:
		return PhaseBlurred
	case eventDismiss:
		if p == PhaseSuggesting {
			return PhaseFocused
		}
	case eventTypedText:
		if p == PhaseFocused {
			return PhaseSuggesting
		}
	case eventClearedText:
		// visibility keeps its current intent
	}
	return p
}
