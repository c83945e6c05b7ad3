package interfaces

import (
	"context"

	"dealdesk/internal/domain/entities"
)

// IDealRepository abstracts persistence for the deal workspace.
//
// LoadDeals/SaveDeals move the whole workspace at once (export/import).
// GetByID returns a zero Deal when the id is unknown. Delete reports
// whether a deal was removed.

type IDealRepository interface {
	LoadDeals(ctx context.Context) ([]entities.Deal, error)
	SaveDeals(ctx context.Context, deals []entities.Deal) error
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	Put(ctx context.Context, d entities.Deal) (entities.Deal, error)
	Delete(ctx context.Context, id string) (bool, error)
}
