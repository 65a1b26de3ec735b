package routes

import (
	"mecanica_checklist/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChecklists         = "/checklists"
	PathChecklistTemplates = "/checklist-templates"
	PathServiceOrders      = "/service-orders"
)

func addChecklistRoutes(
	rg *gin.RouterGroup,
	templateHandler *handlers.ChecklistTemplateHandler,
	checklistHandler *handlers.ChecklistHandler,
	orderHandler *handlers.ServiceOrderHandler,
) {
	templates := rg.Group(PathChecklistTemplates)
	{
		templates.POST("", templateHandler.CreateTemplate)
		templates.GET("/:template_id", templateHandler.GetTemplate)
	}

	checklists := rg.Group(PathChecklists)
	{
		checklists.POST("", checklistHandler.StartChecklist)
		checklists.GET("/:checklist_id", checklistHandler.GetChecklist)
		checklists.PUT("/:checklist_id/answers", checklistHandler.SaveAnswers)
		checklists.POST("/:checklist_id/finalize", checklistHandler.FinalizeChecklist)
	}

	orders := rg.Group(PathServiceOrders)
	{
		orders.GET("/:os_id/closing-eligibility", orderHandler.EvaluateClosing)
		orders.POST("/:os_id/close", orderHandler.CloseOrder)
	}
}
