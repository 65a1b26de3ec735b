package handlers

import (
	"errors"
	"log"
	request "mecanica_checklist/internal/adapter/http/dto/request"
	response "mecanica_checklist/internal/adapter/http/dto/response"
	"mecanica_checklist/internal/usecase"
	"mecanica_checklist/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles closing-gate evaluation and the terminal close.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// EvaluateClosing computes the current closing eligibility. Pure read: safe to
// call repeatedly, recomputed from stored state on every call.
func (h *ServiceOrderHandler) EvaluateClosing(c *gin.Context) {
	osID := c.Param("os_id")

	decision, err := h.usecase.EvaluateClosing(c.Request.Context(), osID)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClosingDecision(decision))
}

// CloseOrder applies the terminal transition. The gate is re-evaluated at
// commit time; impediments must be acknowledged via confirmar_impedimentos.
func (h *ServiceOrderHandler) CloseOrder(c *gin.Context) {
	osID := c.Param("os_id")

	var payload request.CloseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CLOSE_INPUT", "Invalid close payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	closed, err := h.usecase.Close(c.Request.Context(), osID, payload.ResolveStatusFinal(), payload.ObservacoesFechamento, payload.ConfirmarImpedimentos)
	if err != nil {
		var blocked *usecase.ClosingBlockedError
		if errors.As(err, &blocked) {
			c.JSON(http.StatusConflict, response.FromClosingBlocked(blocked.Reasons))
			return
		}
		log.Printf("[os][handler] close failed os_id=%s err=%v", osID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(closed))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTerminalStatus):
		return pkg.NewDomainErrorSimple("INVALID_TERMINAL_STATUS", "status_final must be Concluída or Cancelada", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyClosed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CLOSED", "Service order already closed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
