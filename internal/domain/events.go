package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRosterLoaded      EventType = "RosterLoaded"
	EventCandidateSelected EventType = "CandidateSelected"
	EventSelectionCleared  EventType = "SelectionCleared"
	EventQueryApplied      EventType = "QueryApplied"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventConfigReloaded    EventType = "ConfigReloaded"
	EventError             EventType = "Error"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RosterLoadedEvent is emitted when a candidate roster has been loaded
type RosterLoadedEvent struct {
	Source     string // file path, or "builtin"
	Candidates []Candidate
}

func (e RosterLoadedEvent) Type() EventType { return EventRosterLoaded }

// CandidateSelectedEvent is emitted when the user picks a suggestion
type CandidateSelectedEvent struct {
	Candidate Candidate
}

func (e CandidateSelectedEvent) Type() EventType { return EventCandidateSelected }

// SelectionClearedEvent is emitted when an edit invalidates the selection
type SelectionClearedEvent struct {
	Previous Candidate
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// QueryAppliedEvent is emitted when a debounced query commits
type QueryAppliedEvent struct {
	Query   string
	Matches int
}

func (e QueryAppliedEvent) Type() EventType { return EventQueryApplied }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigReloadedEvent is emitted when the watcher picks up an edited config file
type ConfigReloadedEvent struct {
	Path string
}

func (e ConfigReloadedEvent) Type() EventType { return EventConfigReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	RosterSize int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
