package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSessionOpen    EventType = "session_open"
	EventConsoleSelect  EventType = "console_select"
	EventCatalogResolve EventType = "catalog_resolve"
	EventStepEnter      EventType = "step_enter"
	EventAnswer         EventType = "answer"
	EventCancel         EventType = "cancel"
	EventCommit         EventType = "commit"
	EventRemove         EventType = "remove"
)

// Event describes a wizard transition for observability.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	SessionID  string    `json:"session_id"`
	Shopper    string    `json:"shopper,omitempty"`
	Platform   Platform  `json:"platform"`
	Step       int       `json:"step"`
	QuestionID string    `json:"question_id,omitempty"`
	Value      string    `json:"value,omitempty"`
	Amount     Amount    `json:"amount,omitempty"`
	Source     string    `json:"source,omitempty"`
}

// LifecycleHooks defines callbacks for wizard observability.
type LifecycleHooks struct {
	OnSessionOpen    func(context.Context, *Event)
	OnConsoleSelect  func(context.Context, *Event)
	OnCatalogResolve func(context.Context, *Event)
	OnStepEnter      func(context.Context, *Event)
	OnAnswer         func(context.Context, *Event)
	OnCancel         func(context.Context, *Event)
	OnCommit         func(context.Context, *Event)
	OnRemove         func(context.Context, *Event)
}

// Emit dispatches an event to the matching hook, if set.
func (h LifecycleHooks) Emit(ctx context.Context, e *Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	var fn func(context.Context, *Event)
	switch e.Type {
	case EventSessionOpen:
		fn = h.OnSessionOpen
	case EventConsoleSelect:
		fn = h.OnConsoleSelect
	case EventCatalogResolve:
		fn = h.OnCatalogResolve
	case EventStepEnter:
		fn = h.OnStepEnter
	case EventAnswer:
		fn = h.OnAnswer
	case EventCancel:
		fn = h.OnCancel
	case EventCommit:
		fn = h.OnCommit
	case EventRemove:
		fn = h.OnRemove
	}
	if fn != nil {
		fn(ctx, e)
	}
}

// Merge combines two hook sets; both callbacks run when both are set.
func (h LifecycleHooks) Merge(o LifecycleHooks) LifecycleHooks {
	join := func(a, b func(context.Context, *Event)) func(context.Context, *Event) {
		switch {
		case a == nil:
			return b
		case b == nil:
			return a
		}
		return func(ctx context.Context, e *Event) {
			a(ctx, e)
			b(ctx, e)
		}
	}
	return LifecycleHooks{
		OnSessionOpen:    join(h.OnSessionOpen, o.OnSessionOpen),
		OnConsoleSelect:  join(h.OnConsoleSelect, o.OnConsoleSelect),
		OnCatalogResolve: join(h.OnCatalogResolve, o.OnCatalogResolve),
		OnStepEnter:      join(h.OnStepEnter, o.OnStepEnter),
		OnAnswer:         join(h.OnAnswer, o.OnAnswer),
		OnCancel:         join(h.OnCancel, o.OnCancel),
		OnCommit:         join(h.OnCommit, o.OnCommit),
		OnRemove:         join(h.OnRemove, o.OnRemove),
	}
}
