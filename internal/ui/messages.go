package ui

import (
	"namepick/internal/config"
	"namepick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ConfigReloadedMsg carries a hot-reloaded configuration into Update
type ConfigReloadedMsg struct {
	Config *config.Config
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
