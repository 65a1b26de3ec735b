package usecase

import (
	"context"
	"errors"
	"fmt"
	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTemplateName = errors.New("invalid template name")
	ErrInvalidTemplateItem = errors.New("invalid template item")
)

// IChecklistTemplateUseCase exposes template administration. Templates are
// immutable once created; a template with zero items is accepted and produces
// a trivially completable checklist.

type IChecklistTemplateUseCase interface {
	CreateTemplate(ctx context.Context, name string, items []entities.ChecklistTemplateItem) (entities.ChecklistTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.ChecklistTemplate, error)
}

type ChecklistTemplateUseCase struct {
	repo interfaces.IChecklistTemplateRepository
}

var _ IChecklistTemplateUseCase = (*ChecklistTemplateUseCase)(nil)

func NewChecklistTemplateUseCase(repo interfaces.IChecklistTemplateRepository) *ChecklistTemplateUseCase {
	return &ChecklistTemplateUseCase{repo: repo}
}

func (u *ChecklistTemplateUseCase) CreateTemplate(ctx context.Context, name string, items []entities.ChecklistTemplateItem) (entities.ChecklistTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ChecklistTemplate{}, ErrInvalidTemplateName
	}

	normalized := make([]entities.ChecklistTemplateItem, 0, len(items))
	for i, it := range items {
		it.Question = strings.TrimSpace(it.Question)
		if it.Question == "" {
			return entities.ChecklistTemplate{}, fmt.Errorf("%w: item %d has no question", ErrInvalidTemplateItem, i+1)
		}
		switch it.Type {
		case entities.AnswerTypeSimNao, entities.AnswerTypeTexto, entities.AnswerTypeNumerico:
		case entities.AnswerTypeMultiplaEscolha:
			if len(it.Options) == 0 {
				return entities.ChecklistTemplate{}, fmt.Errorf("%w: item %d has no options", ErrInvalidTemplateItem, i+1)
			}
		default:
			return entities.ChecklistTemplate{}, fmt.Errorf("%w: item %d has unknown type %q", ErrInvalidTemplateItem, i+1, it.Type)
		}
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		it.Order = i + 1
		normalized = append(normalized, it)
	}

	t := entities.ChecklistTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Items:     normalized,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, t)
}

func (u *ChecklistTemplateUseCase) GetTemplate(ctx context.Context, id string) (entities.ChecklistTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChecklistTemplate{}, ErrInvalidTemplateID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	if t.ID == "" {
		return entities.ChecklistTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}
