package interfaces

import (
	"context"
	"mecanica_checklist/internal/domain/entities"
)

// IChecklistAnswerRepository abstracts DynamoDB persistence for ChecklistAnswer.
//
// Upsert must be keyed by (checklist_id, item_id): resubmitting an answer for
// the same item replaces the stored row, it never creates a second one. The
// checklist use case depends on this for idempotent resubmission.

type IChecklistAnswerRepository interface {
	Upsert(ctx context.Context, a entities.ChecklistAnswer) (entities.ChecklistAnswer, error)
	ListByChecklistID(ctx context.Context, checklistID string) ([]entities.ChecklistAnswer, error)
}
