package eventbus

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namepick/internal/domain"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	b := New()
	defer b.Stop()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventCandidateSelected, func(e DomainEvent) { got <- e })

	want := CandidateSelectedEvent{
		Candidate: domain.Candidate{Slug: "ada-lovelace", Name: "Ada Lovelace", Born: 1815, Died: 1852},
	}
	b.Publish(want)

	select {
	case e := <-got:
		require.Equal(t, want, e)
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	b := New()
	defer b.Stop()

	selected := make(chan DomainEvent, 4)
	b.Subscribe(EventCandidateSelected, func(e DomainEvent) { selected <- e })

	b.Publish(SelectionClearedEvent{})
	b.Publish(AppReadyEvent{RosterSize: 3})
	b.Publish(CandidateSelectedEvent{Candidate: domain.Candidate{Slug: "bob"}})

	select {
	case e := <-selected:
		assert.Equal(t, EventCandidateSelected, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}

	// Nothing else should arrive for this subscriber
	select {
	case e := <-selected:
		t.Fatalf("unexpected extra delivery: %v", e.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Stop()

	first := make(chan DomainEvent, 4)
	second := make(chan DomainEvent, 4)
	unsubscribe := b.Subscribe(EventAppReady, func(e DomainEvent) { first <- e })
	b.Subscribe(EventAppReady, func(e DomainEvent) { second <- e })

	unsubscribe()
	b.Publish(AppReadyEvent{RosterSize: 1})

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber never received the event")
	}

	select {
	case <-first:
		t.Fatal("unsubscribed handler still received the event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatch(t *testing.T) {
	b := New()
	defer b.Stop()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	survived := make(chan DomainEvent, 1)
	b.Subscribe(EventError, func(e DomainEvent) { survived <- e })

	b.Publish(ErrorEvent{Message: "first"})

	select {
	case <-survived:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch stopped after handler panic")
	}

	// The bus still works for later events
	b.Publish(ErrorEvent{Message: "second"})
	select {
	case <-survived:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch dead after panic recovery")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	b := New()
	b.Stop()
	b.Stop()

	// Publishing after Stop must not block or panic
	b.Publish(AppReadyEvent{})
}
