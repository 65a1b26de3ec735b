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
)

var (
	ErrServiceOrderNotFound  = errors.New("service order not found")
	ErrInvalidServiceOrderID = errors.New("invalid service order id")
	ErrInvalidTerminalStatus = errors.New("invalid terminal status")
	ErrOrderAlreadyClosed    = errors.New("service order already closed")
)

// BlockingReasonChecklistPending is the user-facing impediment raised when the
// linked checklist has not been finalized.
const BlockingReasonChecklistPending = "Checklist obrigatório não finalizado"

// ClosingBlockedError is returned by Close when the gate reports impediments
// and the caller did not acknowledge them. The gate is advisory: resubmitting
// with the acknowledgement flag proceeds anyway.
type ClosingBlockedError struct {
	Reasons []string
}

func (e *ClosingBlockedError) Error() string {
	return fmt.Sprintf("service order closing blocked: %s", strings.Join(e.Reasons, "; "))
}

// IServiceOrderUseCase exposes the closing gate and the terminal transition:
//   - EvaluateClosing: idempotent read, recomputed on every call, never cached
//   - Close: re-evaluates the gate at commit time, then applies the permanent
//     terminal status with first-writer-wins semantics

type IServiceOrderUseCase interface {
	EvaluateClosing(ctx context.Context, osID string) (entities.ClosingDecision, error)
	Close(ctx context.Context, osID, statusFinal, closingNotes string, acknowledgeBlocked bool) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orderRepo     interfaces.IServiceOrderRepository
	checklistRepo interfaces.IChecklistRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(orderRepo interfaces.IServiceOrderRepository, checklistRepo interfaces.IChecklistRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{orderRepo: orderRepo, checklistRepo: checklistRepo}
}

func (u *ServiceOrderUseCase) EvaluateClosing(ctx context.Context, osID string) (entities.ClosingDecision, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.ClosingDecision{}, ErrInvalidServiceOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, osID)
	if err != nil {
		return entities.ClosingDecision{}, err
	}
	if order.ID == "" {
		return entities.ClosingDecision{}, ErrServiceOrderNotFound
	}

	decision := entities.ClosingDecision{
		CurrentStatus:   order.StatusName,
		BlockingReasons: []string{},
	}

	cl, err := u.checklistRepo.GetByOSID(ctx, osID)
	if err != nil {
		return entities.ClosingDecision{}, err
	}
	if cl.ID != "" {
		decision.HasChecklist = true
		finished := cl.Finalized()
		decision.ChecklistFinished = &finished
	}

	// Already-closed orders are their own branch, never a blocking reason.
	if order.Closed() {
		decision.Outcome = entities.ClosingOutcomeAlreadyClosed
		return decision, nil
	}

	if decision.HasChecklist && !*decision.ChecklistFinished {
		decision.BlockingReasons = append(decision.BlockingReasons, BlockingReasonChecklistPending)
	}

	if len(decision.BlockingReasons) == 0 {
		decision.Outcome = entities.ClosingOutcomeEligible
		decision.CanClose = true
	} else {
		decision.Outcome = entities.ClosingOutcomeBlocked
	}
	return decision, nil
}

func (u *ServiceOrderUseCase) Close(ctx context.Context, osID, statusFinal, closingNotes string, acknowledgeBlocked bool) (entities.ServiceOrder, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	statusFinal = strings.TrimSpace(statusFinal)
	if !entities.IsAcceptedCloseStatus(statusFinal) {
		return entities.ServiceOrder{}, ErrInvalidTerminalStatus
	}

	// The UI's optimistic pode_fechar flag is never trusted: re-evaluate here.
	decision, err := u.EvaluateClosing(ctx, osID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	switch decision.Outcome {
	case entities.ClosingOutcomeAlreadyClosed:
		return entities.ServiceOrder{}, ErrOrderAlreadyClosed
	case entities.ClosingOutcomeBlocked:
		if !acknowledgeBlocked {
			return entities.ServiceOrder{}, &ClosingBlockedError{Reasons: decision.BlockingReasons}
		}
		log.Printf("[os][usecase] close proceeding despite impediments os_id=%s motivos=%q", osID, decision.BlockingReasons)
	}

	closed, err := u.orderRepo.Close(ctx, osID, statusFinal, strings.TrimSpace(closingNotes), time.Now().UTC())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if closed.ID == "" {
		// Lost the race: another caller closed first.
		return entities.ServiceOrder{}, ErrOrderAlreadyClosed
	}
	log.Printf("[os][usecase] close success os_id=%s status_final=%s", osID, statusFinal)
	return closed, nil
}
