package routes

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	_ "buildready/docs" // swag-generated documentation
	"buildready/internal/adapter/http/handlers"
	"buildready/internal/adapter/persistence/repository"
	"buildready/internal/infrastructure/database"
	"buildready/internal/infrastructure/storage"
	"buildready/internal/usecase"

	"github.com/gin-contrib/cors"
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

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	itemRepo := repository.NewEstimateItemDynamoRepository(ddb)
	issueRepo := repository.NewValidationIssueDynamoRepository(ddb)
	standardsRepo := repository.NewStandardsDynamoRepository(ddb)
	progressRepo := repository.NewOnboardingDynamoRepository(ddb)
	documentRepo := repository.NewPricingDocumentDynamoRepository(ddb)
	documentStore := storage.NewLocalDocumentStore()

	onboardingUseCase := usecase.NewOnboardingUseCase(progressRepo)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, itemRepo, issueRepo, standardsRepo, onboardingUseCase, rng)
	itemUseCase := usecase.NewEstimateItemUseCase(itemRepo, estimateRepo)
	issueUseCase := usecase.NewValidationIssueUseCase(issueRepo, estimateRepo)
	standardsUseCase := usecase.NewStandardsUseCase(standardsRepo, onboardingUseCase)
	documentUseCase := usecase.NewPricingDocumentUseCase(documentRepo, documentStore, onboardingUseCase)
	resetUseCase := usecase.NewResetUseCase(estimateRepo, itemRepo, issueRepo, standardsRepo, progressRepo, documentRepo, documentStore)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	itemHandler := handlers.NewEstimateItemHandler(itemUseCase)
	issueHandler := handlers.NewValidationIssueHandler(issueUseCase)
	standardsHandler := handlers.NewStandardsHandler(standardsUseCase)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingUseCase)
	documentHandler := handlers.NewPricingDocumentHandler(documentUseCase)
	adminHandler := handlers.NewAdminHandler(resetUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimationRoutes(v1, estimateHandler, itemHandler, issueHandler)
	addOnboardingRoutes(v1, standardsHandler, onboardingHandler, documentHandler, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handlers.AccountHeader},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
