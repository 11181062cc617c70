package service

import (
	"context"
	"errors"

	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/repository/contract"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/pkg/events"

	"gorm.io/gorm"
)

// contentNotifier publishes content-change events. Failures are logged, never returned.
type contentNotifier struct {
	publisher events.Publisher
	log       logger.ILogger
}

func newContentNotifier(publisher events.Publisher, log logger.ILogger) contentNotifier {
	return contentNotifier{publisher: publisher, log: log}
}

func (n contentNotifier) changed(ctx context.Context, entityType string, id int, action events.Action) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, events.ContentChanged(entityType, id, action)); err != nil {
		n.log.Warn("EVENTS", "Failed to publish content change", map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   id,
			"action":      string(action),
			"error":       err.Error(),
		})
	}
}

// findOr404 loads a row by id and turns a miss into a 404 naming the resource.
func findOr404[E any](ctx context.Context, repo contract.CrudRepository[E], label string, id int, specs ...specification.Specification) (*E, error) {
	row, err := repo.FindOne(ctx, append([]specification.Specification{specification.ByID{ID: id}}, specs...)...)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("%s not found", label)
	}
	return row, nil
}

// mustExist is findOr404 for references inside a request body, which are a 400.
func mustExist[E any](ctx context.Context, repo contract.CrudRepository[E], label string, id int) error {
	count, err := repo.Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if count == 0 {
		return apperror.BadRequest("%s %d does not exist", label, id)
	}
	return nil
}

// duplicateAs maps a unique index violation to the same 400 the explicit pre-check returns.
func duplicateAs(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("%s", message)
	}
	return err
}

// inUseBy rejects deleting a content block that is still placed on a page.
func inUseBy(ctx context.Context, sections contract.PageSectionRepository, column, label string, id int) error {
	count, err := sections.Count(ctx, specification.ReferencedBy{Column: column, ID: id})
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.BadRequest("%s is used by %d page section(s)", label, count)
	}
	return nil
}

// sortOrderOr returns the requested position, or the next free one when none was sent.
func sortOrderOr(ctx context.Context, requested *int, next func(context.Context) (int, error)) (int, error) {
	if requested != nil {
		return *requested, nil
	}
	return next(ctx)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func positiveOrNil(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	id := *v
	return &id
}

func nilIfBlank(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
