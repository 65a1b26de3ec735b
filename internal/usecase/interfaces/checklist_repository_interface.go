package interfaces

import (
	"context"
	"mecanica_checklist/internal/domain/entities"
	"time"
)

// IChecklistRepository abstracts DynamoDB persistence for Checklist instances.
//
// The checklist core must be able to:
//   - create an instance when an operator starts a checklist
//   - resolve the 0-or-1 instance linked to a service order (os_id-index)
//   - advance iniciado -> em_andamento when the first answer batch lands
//   - finalize with first-writer-wins semantics
//
// AdvanceToInProgress is a no-op when the instance is already past iniciado.
// Finalize returns a zero-value Checklist when the instance was already
// finalized by a concurrent caller; the use case maps that to the typed error.

type IChecklistRepository interface {
	Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error)
	GetByID(ctx context.Context, id string) (entities.Checklist, error)
	GetByOSID(ctx context.Context, osID string) (entities.Checklist, error)
	AdvanceToInProgress(ctx context.Context, id string) (entities.Checklist, error)
	Finalize(ctx context.Context, id string, finishedAt time.Time) (entities.Checklist, error)
}
