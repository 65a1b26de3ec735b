package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrChecklistNotFound      = errors.New("checklist not found")
	ErrTemplateNotFound       = errors.New("checklist template not found")
	ErrChecklistAlreadyExists = errors.New("checklist already exists for this OS")
	ErrChecklistFinalizado    = errors.New("checklist already finalized")
	ErrInvalidChecklistID     = errors.New("invalid checklist id")
	ErrInvalidTemplateID      = errors.New("invalid template id")
	ErrInvalidAnswerItem      = errors.New("answer does not match a template item")
)

// RequiredAnswersError is returned by Finalize when required items still lack
// a stored answer. It carries the offending item ids so the caller can render
// "N required question(s) still need a response".
type RequiredAnswersError struct {
	MissingItemIDs []string
}

func (e *RequiredAnswersError) Error() string {
	return fmt.Sprintf("%d required question(s) without a response", len(e.MissingItemIDs))
}

// AnswerSubmission is one answer in a save/finalize batch.
type AnswerSubmission struct {
	ItemID string
	Value  entities.AnswerValue
	Note   string
}

// IChecklistUseCase exposes the checklist instance lifecycle:
//   - Start: instantiate a template (status iniciado)
//   - SaveAnswers: batch upsert; first stored answer derives em_andamento
//   - Finalize: final save + required-answer validation + terminal transition

type IChecklistUseCase interface {
	Start(ctx context.Context, templateID, osID, vehicleID, employeeID, notes string) (entities.Checklist, error)
	SaveAnswers(ctx context.Context, checklistID string, answers []AnswerSubmission) (entities.Checklist, error)
	Finalize(ctx context.Context, checklistID string, answers []AnswerSubmission) (entities.Checklist, error)
	GetByID(ctx context.Context, id string) (entities.Checklist, error)
	ListAnswers(ctx context.Context, checklistID string) ([]entities.ChecklistAnswer, error)
}

type ChecklistUseCase struct {
	templateRepo interfaces.IChecklistTemplateRepository
	repo         interfaces.IChecklistRepository
	answerRepo   interfaces.IChecklistAnswerRepository
	orderRepo    interfaces.IServiceOrderRepository
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(
	templateRepo interfaces.IChecklistTemplateRepository,
	repo interfaces.IChecklistRepository,
	answerRepo interfaces.IChecklistAnswerRepository,
	orderRepo interfaces.IServiceOrderRepository,
) *ChecklistUseCase {
	return &ChecklistUseCase{templateRepo: templateRepo, repo: repo, answerRepo: answerRepo, orderRepo: orderRepo}
}

func (u *ChecklistUseCase) Start(ctx context.Context, templateID, osID, vehicleID, employeeID, notes string) (entities.Checklist, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return entities.Checklist{}, ErrInvalidTemplateID
	}

	tpl, err := u.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return entities.Checklist{}, err
	}
	if tpl.ID == "" {
		return entities.Checklist{}, ErrTemplateNotFound
	}

	osID = strings.TrimSpace(osID)
	if osID != "" {
		order, err := u.orderRepo.GetByID(ctx, osID)
		if err != nil {
			return entities.Checklist{}, err
		}
		if order.ID == "" {
			return entities.Checklist{}, ErrServiceOrderNotFound
		}
		if order.Closed() {
			return entities.Checklist{}, ErrOrderAlreadyClosed
		}

		// Enforce: 0-or-1 checklist per OS.
		if existing, err := u.repo.GetByOSID(ctx, osID); err != nil {
			return entities.Checklist{}, err
		} else if existing.ID != "" {
			return entities.Checklist{}, ErrChecklistAlreadyExists
		}
	}

	c := entities.Checklist{
		ID:         uuid.NewString(),
		TemplateID: templateID,
		OSID:       osID,
		VehicleID:  strings.TrimSpace(vehicleID),
		EmployeeID: strings.TrimSpace(employeeID),
		Status:     entities.ChecklistStatusIniciado,
		Notes:      strings.TrimSpace(notes),
		StartedAt:  time.Now().UTC(),
	}
	log.Printf("[checklist][usecase] start checklist_id=%s template_id=%s os_id=%s", c.ID, templateID, osID)
	return u.repo.Create(ctx, c)
}

func (u *ChecklistUseCase) SaveAnswers(ctx context.Context, checklistID string, answers []AnswerSubmission) (entities.Checklist, error) {
	c, tpl, err := u.loadOpenChecklist(ctx, checklistID)
	if err != nil {
		return entities.Checklist{}, err
	}

	stored, err := u.storeAnswers(ctx, c.ID, tpl, answers)
	if err != nil {
		return entities.Checklist{}, err
	}
	log.Printf("[checklist][usecase] save-answers checklist_id=%s submitted=%d stored=%d", c.ID, len(answers), stored)

	if stored > 0 && c.Status == entities.ChecklistStatusIniciado {
		return u.repo.AdvanceToInProgress(ctx, c.ID)
	}
	return c, nil
}

func (u *ChecklistUseCase) Finalize(ctx context.Context, checklistID string, answers []AnswerSubmission) (entities.Checklist, error) {
	c, tpl, err := u.loadOpenChecklist(ctx, checklistID)
	if err != nil {
		return entities.Checklist{}, err
	}

	// Final save just before finalizing, so the confirm action never loses the
	// last batch typed by the operator.
	if _, err := u.storeAnswers(ctx, c.ID, tpl, answers); err != nil {
		return entities.Checklist{}, err
	}

	existing, err := u.answerRepo.ListByChecklistID(ctx, c.ID)
	if err != nil {
		return entities.Checklist{}, err
	}
	answered := make(map[string]bool, len(existing))
	for _, a := range existing {
		if !a.Value.IsEmpty() {
			answered[a.ItemID] = true
		}
	}

	var missing []string
	for _, item := range tpl.RequiredItems() {
		if !answered[item.ID] {
			missing = append(missing, item.ID)
		}
	}
	if len(missing) > 0 {
		log.Printf("[checklist][usecase] finalize blocked checklist_id=%s missing=%d", c.ID, len(missing))
		return entities.Checklist{}, &RequiredAnswersError{MissingItemIDs: missing}
	}

	finalized, err := u.repo.Finalize(ctx, c.ID, time.Now().UTC())
	if err != nil {
		return entities.Checklist{}, err
	}
	if finalized.ID == "" {
		// Lost the race: another caller finalized first.
		return entities.Checklist{}, ErrChecklistFinalizado
	}
	log.Printf("[checklist][usecase] finalize success checklist_id=%s", finalized.ID)
	return finalized, nil
}

func (u *ChecklistUseCase) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Checklist{}, ErrInvalidChecklistID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}
	return c, nil
}

func (u *ChecklistUseCase) ListAnswers(ctx context.Context, checklistID string) ([]entities.ChecklistAnswer, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return nil, ErrInvalidChecklistID
	}
	return u.answerRepo.ListByChecklistID(ctx, checklistID)
}

// loadOpenChecklist loads the instance and its template, rejecting writes when
// the instance is finalized or its linked service order is already closed.
func (u *ChecklistUseCase) loadOpenChecklist(ctx context.Context, checklistID string) (entities.Checklist, entities.ChecklistTemplate, error) {
	c, err := u.GetByID(ctx, checklistID)
	if err != nil {
		return entities.Checklist{}, entities.ChecklistTemplate{}, err
	}
	if c.Finalized() {
		return entities.Checklist{}, entities.ChecklistTemplate{}, ErrChecklistFinalizado
	}

	if c.OSID != "" {
		order, err := u.orderRepo.GetByID(ctx, c.OSID)
		if err != nil {
			return entities.Checklist{}, entities.ChecklistTemplate{}, err
		}
		if order.ID != "" && order.Closed() {
			return entities.Checklist{}, entities.ChecklistTemplate{}, ErrOrderAlreadyClosed
		}
	}

	tpl, err := u.templateRepo.GetByID(ctx, c.TemplateID)
	if err != nil {
		return entities.Checklist{}, entities.ChecklistTemplate{}, err
	}
	if tpl.ID == "" {
		return entities.Checklist{}, entities.ChecklistTemplate{}, ErrTemplateNotFound
	}
	return c, tpl, nil
}

// storeAnswers upserts the non-empty answers of a batch and returns how many
// were stored. Empty values are dropped silently, never persisted as blanks.
func (u *ChecklistUseCase) storeAnswers(ctx context.Context, checklistID string, tpl entities.ChecklistTemplate, answers []AnswerSubmission) (int, error) {
	now := time.Now().UTC()
	stored := 0
	for _, a := range answers {
		itemID := strings.TrimSpace(a.ItemID)
		if itemID == "" || a.Value.IsEmpty() {
			continue
		}
		item, ok := tpl.ItemByID(itemID)
		if !ok {
			return stored, fmt.Errorf("%w: %s", ErrInvalidAnswerItem, itemID)
		}
		if !a.Value.MatchesItem(item) {
			return stored, fmt.Errorf("%w: %s", ErrInvalidAnswerItem, itemID)
		}

		_, err := u.answerRepo.Upsert(ctx, entities.ChecklistAnswer{
			ChecklistID: checklistID,
			ItemID:      itemID,
			Value:       a.Value,
			Note:        strings.TrimSpace(a.Note),
			AnsweredAt:  now,
		})
		if err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}
