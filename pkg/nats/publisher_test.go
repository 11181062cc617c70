package nats

import (
	"context"
	"testing"

	"sitebuilder-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.SITE_CONTENT_CHANGED", Subject(events.SiteContentChanged))
}

func TestNilPublisherDropsEvents(t *testing.T) {
	var p *Publisher

	assert.NoError(t, p.Publish(context.Background(), events.ContentChanged("page", 1, events.ActionCreated)))
	assert.NotPanics(t, p.Close)
}
