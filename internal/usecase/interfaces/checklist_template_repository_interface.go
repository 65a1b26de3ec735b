package interfaces

import (
	"context"
	"mecanica_checklist/internal/domain/entities"
)

// IChecklistTemplateRepository abstracts DynamoDB persistence for ChecklistTemplate.
//
// Templates are write-once: Create is used by back-office administration, the
// checklist core itself only reads.

type IChecklistTemplateRepository interface {
	Create(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error)
}
