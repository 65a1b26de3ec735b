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

var (
	errInvalidChecklistPayload = pkg.NewDomainErrorSimple("INVALID_CHECKLIST_INPUT", "Invalid checklist payload", http.StatusBadRequest)
)

// ChecklistHandler handles HTTP requests for checklist instances.

type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
}

func NewChecklistHandler(uc usecase.IChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc}
}

// StartChecklist instantiates a template, optionally linked to an OS.
func (h *ChecklistHandler) StartChecklist(c *gin.Context) {
	var payload request.StartChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Start(c.Request.Context(), payload.ResolveTemplateID(), payload.OSID, payload.VehicleID, payload.EmployeeID, payload.Observacoes)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChecklist(created))
}

// GetChecklist returns the instance together with its stored answers, used by
// the UI to rehydrate a form in progress.
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklistID := c.Param("checklist_id")

	checklist, err := h.usecase.GetByID(c.Request.Context(), checklistID)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	answers, err := h.usecase.ListAnswers(c.Request.Context(), checklistID)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklistWithAnswers(checklist, answers))
}

// SaveAnswers stores a batch of answers (upsert per item). The finalized state
// is enforced here on the server, not only by the disabled form client-side.
func (h *ChecklistHandler) SaveAnswers(c *gin.Context) {
	checklistID := c.Param("checklist_id")

	var payload request.SaveAnswersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SaveAnswers(c.Request.Context(), checklistID, toSubmissions(payload.Respostas))
	if err != nil {
		log.Printf("[checklist][handler] save-answers failed checklist_id=%s err=%v", checklistID, err)
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklist(updated))
}

// FinalizeChecklist saves any trailing answers and applies the terminal
// transition. Pending required questions come back as a 422 with the item ids.
func (h *ChecklistHandler) FinalizeChecklist(c *gin.Context) {
	checklistID := c.Param("checklist_id")

	var payload request.FinalizeChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	finalized, err := h.usecase.Finalize(c.Request.Context(), checklistID, toSubmissions(payload.Respostas))
	if err != nil {
		var pending *usecase.RequiredAnswersError
		if errors.As(err, &pending) {
			c.JSON(http.StatusUnprocessableEntity, response.FromRequiredAnswers(pending.MissingItemIDs))
			return
		}
		log.Printf("[checklist][handler] finalize failed checklist_id=%s err=%v", checklistID, err)
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklist(finalized))
}

func toSubmissions(payloads []request.AnswerPayload) []usecase.AnswerSubmission {
	subs := make([]usecase.AnswerSubmission, 0, len(payloads))
	for _, p := range payloads {
		subs = append(subs, usecase.AnswerSubmission{
			ItemID: p.ItemID,
			Value:  p.ToAnswerValue(),
			Note:   p.Observacao,
		})
	}
	return subs
}

func mapChecklistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChecklistID), errors.Is(err, usecase.ErrInvalidTemplateID), errors.Is(err, usecase.ErrInvalidAnswerItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Checklist template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_FOUND", "Checklist not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistAlreadyExists):
		return pkg.NewDomainErrorSimple("CHECKLIST_ALREADY_EXISTS", "Checklist already exists for this OS", http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistFinalizado):
		return pkg.NewDomainErrorSimple("CHECKLIST_FINALIZED", "Checklist is finalized and no longer accepts changes", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyClosed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CLOSED", "Service order already closed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
