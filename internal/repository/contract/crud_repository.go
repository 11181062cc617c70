package contract

import (
	"context"

	"sitebuilder-be/internal/repository/specification"
)

// CrudRepository is the storage contract every site resource shares.
// FindOne returns (nil, nil) when nothing matches.
type CrudRepository[E any] interface {
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAll(ctx context.Context, specs ...specification.Specification) error

	// NextSortOrder returns max(sort_order)+1 over the matching rows, or 1 when there are none.
	NextSortOrder(ctx context.Context, specs ...specification.Specification) (int, error)
}
