package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_MergeAndEmit(t *testing.T) {
	var calls []string
	a := LifecycleHooks{OnCommit: func(context.Context, *Event) { calls = append(calls, "a") }}
	b := LifecycleHooks{
		OnCommit: func(context.Context, *Event) { calls = append(calls, "b") },
		OnCancel: func(context.Context, *Event) { calls = append(calls, "cancel") },
	}

	h := a.Merge(b)
	ev := &Event{Type: EventCommit}
	h.Emit(context.Background(), ev)
	h.Emit(context.Background(), &Event{Type: EventCancel})
	h.Emit(context.Background(), &Event{Type: EventAnswer})

	assert.Equal(t, []string{"a", "b", "cancel"}, calls)
	assert.False(t, ev.Timestamp.IsZero())
}
