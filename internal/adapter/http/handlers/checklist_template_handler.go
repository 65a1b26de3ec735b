package handlers

import (
	"errors"
	request "mecanica_checklist/internal/adapter/http/dto/request"
	response "mecanica_checklist/internal/adapter/http/dto/response"
	"mecanica_checklist/internal/usecase"
	"mecanica_checklist/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChecklistTemplateHandler handles template administration requests.

type ChecklistTemplateHandler struct {
	usecase usecase.IChecklistTemplateUseCase
}

func NewChecklistTemplateHandler(uc usecase.IChecklistTemplateUseCase) *ChecklistTemplateHandler {
	return &ChecklistTemplateHandler{usecase: uc}
}

func (h *ChecklistTemplateHandler) CreateTemplate(c *gin.Context) {
	var payload request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateTemplate(c.Request.Context(), payload.ResolveName(), payload.ToItems())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChecklistTemplate(created))
}

func (h *ChecklistTemplateHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.usecase.GetTemplate(c.Request.Context(), c.Param("template_id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklistTemplate(tpl))
}

func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTemplateID), errors.Is(err, usecase.ErrInvalidTemplateName), errors.Is(err, usecase.ErrInvalidTemplateItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Checklist template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
