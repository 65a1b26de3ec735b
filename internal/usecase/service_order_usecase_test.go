package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"mecanica_checklist/internal/domain/entities"
	mock_interfaces "mecanica_checklist/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newServiceOrderUseCaseWithMocks(t *testing.T) (*ServiceOrderUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIChecklistRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	checklistRepo := mock_interfaces.NewMockIChecklistRepository(ctrl)
	return NewServiceOrderUseCase(orderRepo, checklistRepo), orderRepo, checklistRepo
}

func openOrder() entities.ServiceOrder {
	return entities.ServiceOrder{ID: "os-1", Number: "OS-2026-0042", Status: "em_execucao", StatusName: "Em execução"}
}

func TestServiceOrderUseCase_EvaluateClosing(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.EvaluateClosing(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, orderRepo, _ := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		_, err := uc.EvaluateClosing(context.Background(), "os-x")
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("no linked checklist means eligible", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{}, nil)

		decision, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Outcome != entities.ClosingOutcomeEligible || !decision.CanClose {
			t.Fatalf("expected eligible decision, got %+v", decision)
		}
		if decision.HasChecklist || decision.ChecklistFinished != nil {
			t.Fatalf("expected no checklist info, got %+v", decision)
		}
		if len(decision.BlockingReasons) != 0 {
			t.Fatalf("expected no blocking reasons, got %v", decision.BlockingReasons)
		}
	})

	t.Run("unfinished checklist blocks", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", OSID: "os-1", Status: entities.ChecklistStatusEmAndamento}, nil)

		decision, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Outcome != entities.ClosingOutcomeBlocked || decision.CanClose {
			t.Fatalf("expected blocked decision, got %+v", decision)
		}
		if !decision.HasChecklist || decision.ChecklistFinished == nil || *decision.ChecklistFinished {
			t.Fatalf("expected unfinished checklist info, got %+v", decision)
		}
		if len(decision.BlockingReasons) != 1 || decision.BlockingReasons[0] != BlockingReasonChecklistPending {
			t.Fatalf("unexpected reasons: %v", decision.BlockingReasons)
		}
	})

	t.Run("finalized checklist means eligible", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", OSID: "os-1", Status: entities.ChecklistStatusFinalizado}, nil)

		decision, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Outcome != entities.ClosingOutcomeEligible || !decision.CanClose {
			t.Fatalf("expected eligible decision, got %+v", decision)
		}
		if decision.ChecklistFinished == nil || !*decision.ChecklistFinished {
			t.Fatalf("expected finished checklist info, got %+v", decision)
		}
	})

	t.Run("already closed order", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		closed := openOrder()
		closed.StatusName = entities.OrderStatusConcluida
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(closed, nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusEmAndamento}, nil)

		decision, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Outcome != entities.ClosingOutcomeAlreadyClosed || decision.CanClose {
			t.Fatalf("expected ja_encerrada decision, got %+v", decision)
		}
		if len(decision.BlockingReasons) != 0 {
			t.Fatalf("expected no blocking reasons on closed order, got %v", decision.BlockingReasons)
		}
	})

	t.Run("repeat evaluation yields the same decision", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil).Times(2)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusIniciado}, nil).Times(2)

		first, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.EvaluateClosing(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical decisions, got %+v vs %+v", first, second)
		}
	})
}

func TestServiceOrderUseCase_Close(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.Close(context.Background(), "  ", entities.OrderStatusConcluida, "", false)
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("terminal status outside the accepted set", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		for _, status := range []string{"", "Aberta", "Em execução", entities.OrderStatusFinalizada} {
			_, err := uc.Close(context.Background(), "os-1", status, "", false)
			if !errors.Is(err, ErrInvalidTerminalStatus) {
				t.Fatalf("status %q: expected ErrInvalidTerminalStatus, got %v", status, err)
			}
		}
	})

	t.Run("already closed", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		closed := openOrder()
		closed.StatusName = entities.OrderStatusCancelada
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(closed, nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{}, nil)

		_, err := uc.Close(context.Background(), "os-1", entities.OrderStatusConcluida, "", false)
		if !errors.Is(err, ErrOrderAlreadyClosed) {
			t.Fatalf("expected ErrOrderAlreadyClosed, got %v", err)
		}
	})

	t.Run("blocked without acknowledgement", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusEmAndamento}, nil)

		_, err := uc.Close(context.Background(), "os-1", entities.OrderStatusConcluida, "", false)
		var blocked *ClosingBlockedError
		if !errors.As(err, &blocked) {
			t.Fatalf("expected ClosingBlockedError, got %v", err)
		}
		if len(blocked.Reasons) != 1 || blocked.Reasons[0] != BlockingReasonChecklistPending {
			t.Fatalf("unexpected reasons: %v", blocked.Reasons)
		}
	})

	t.Run("blocked with acknowledgement proceeds", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusEmAndamento}, nil)
		orderRepo.EXPECT().Close(gomock.Any(), "os-1", entities.OrderStatusCancelada, "cliente desistiu", gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, id, statusFinal, notes string, closedAt time.Time) (entities.ServiceOrder, error) {
				o := openOrder()
				o.Status = statusFinal
				o.StatusName = statusFinal
				o.ClosingNotes = notes
				o.ClosedAt = &closedAt
				return o, nil
			},
		)

		res, err := uc.Close(context.Background(), "os-1", entities.OrderStatusCancelada, " cliente desistiu ", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusName != entities.OrderStatusCancelada || res.ClosedAt == nil {
			t.Fatalf("expected cancelled order, got %+v", res)
		}
	})

	t.Run("eligible close succeeds", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusFinalizado}, nil)
		closed := openOrder()
		closed.StatusName = entities.OrderStatusConcluida
		orderRepo.EXPECT().Close(gomock.Any(), "os-1", entities.OrderStatusConcluida, "", gomock.Any()).Return(closed, nil)

		res, err := uc.Close(context.Background(), "os-1", entities.OrderStatusConcluida, "", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusName != entities.OrderStatusConcluida {
			t.Fatalf("expected closed order, got %+v", res)
		}
	})

	t.Run("concurrent close loses the race", func(t *testing.T) {
		uc, orderRepo, checklistRepo := newServiceOrderUseCaseWithMocks(t)
		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(openOrder(), nil)
		checklistRepo.EXPECT().GetByOSID(gomock.Any(), "os-1").Return(entities.Checklist{}, nil)
		orderRepo.EXPECT().Close(gomock.Any(), "os-1", entities.OrderStatusConcluida, "", gomock.Any()).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Close(context.Background(), "os-1", entities.OrderStatusConcluida, "", false)
		if !errors.Is(err, ErrOrderAlreadyClosed) {
			t.Fatalf("expected ErrOrderAlreadyClosed, got %v", err)
		}
	})
}
