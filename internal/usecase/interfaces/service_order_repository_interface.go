package interfaces

import (
	"context"
	"mecanica_checklist/internal/domain/entities"
	"time"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Orders are created by the upstream OS service; this service reads them and
// applies the terminal transition. Close must be conditional on the order not
// already carrying a terminal status, returning a zero-value ServiceOrder when
// the condition fails (lost race or repeated close).

type IServiceOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Close(ctx context.Context, id, statusFinal, closingNotes string, closedAt time.Time) (entities.ServiceOrder, error)
}
