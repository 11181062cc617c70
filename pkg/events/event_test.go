package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentChanged(t *testing.T) {
	evt := ContentChanged("page", 12, ActionUpdated)

	assert.Equal(t, SiteContentChanged, evt.EventType())
	assert.Equal(t, map[string]interface{}{
		"entity_type": "page",
		"entity_id":   12,
		"action":      "updated",
	}, evt.Payload())
	assert.False(t, evt.Timestamp().IsZero())
}

func TestMemoryPublisher(t *testing.T) {
	p := NewMemoryPublisher()
	require.NoError(t, p.Publish(context.Background(), ContentChanged("page", 1, ActionCreated)))
	require.NoError(t, p.Publish(context.Background(), ContentChanged("page", 1, ActionDeleted)))

	got := p.Events()
	require.Len(t, got, 2)
	assert.Equal(t, "deleted", got[1].Payload()["action"])
}
