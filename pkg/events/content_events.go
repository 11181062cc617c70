package events

import "time"

const SiteContentChanged = "SITE_CONTENT_CHANGED"

type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionReordered Action = "reordered"
)

// ContentChanged tells listeners (revalidation hooks, search indexers) that published content moved.
func ContentChanged(entityType string, entityId int, action Action) Event {
	return BaseEvent{
		Type: SiteContentChanged,
		Data: map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityId,
			"action":      string(action),
		},
		OccurredAt: time.Now().UTC(),
	}
}
