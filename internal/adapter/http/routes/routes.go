package routes

import (
	"log"
	_ "mecanica_checklist/docs" // This will be auto-generated
	"mecanica_checklist/internal/adapter/http/handlers"
	repository2 "mecanica_checklist/internal/adapter/persistence/repository"
	"mecanica_checklist/internal/infrastructure/database"
	"mecanica_checklist/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	templateRepo := repository2.NewChecklistTemplateDynamoRepository(ddb)
	checklistRepo := repository2.NewChecklistDynamoRepository(ddb)
	answerRepo := repository2.NewChecklistAnswerDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)

	templateUseCase := usecase.NewChecklistTemplateUseCase(templateRepo)
	checklistUseCase := usecase.NewChecklistUseCase(templateRepo, checklistRepo, answerRepo, orderRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, checklistRepo)

	templateHandler := handlers.NewChecklistTemplateHandler(templateUseCase)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChecklistRoutes(v1, templateHandler, checklistHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
