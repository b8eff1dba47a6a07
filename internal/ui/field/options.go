package field

import (
	"time"

	"namepick/internal/domain"
)

// Option configures the field at construction time
type Option func(*Model)

// WithDelay sets the debounce interval for filter commits.
// Non-positive values are ignored and the default stands.
func WithDelay(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.delay = d
		}
	}
}

// WithOnSelect registers the callback fired when a suggestion is
// confirmed. This is the field's only output to the embedding context;
// leaving it nil makes selection a silent state change.
func WithOnSelect(fn func(domain.Candidate)) Option {
	return func(m *Model) {
		m.onSelect = fn
	}
}

// WithMaxRows caps the rendered dropdown height
func WithMaxRows(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxRows = n
		}
	}
}

// WithShowYears toggles the lifespan suffix on suggestion rows
func WithShowYears(show bool) Option {
	return func(m *Model) {
		m.showYears = show
	}
}

// WithStyles replaces the default dropdown styles
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keymap = k
	}
}

// WithPlaceholder sets the input's placeholder text
func WithPlaceholder(s string) Option {
	return func(m *Model) {
		m.input.Placeholder = s
	}
}
