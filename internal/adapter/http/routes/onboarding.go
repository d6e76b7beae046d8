package routes

import (
	"buildready/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStandards = "/standards"
	PathProgress  = "/progress"
	PathDocuments = "/documents"
	PathAdmin     = "/admin"
)

func addOnboardingRoutes(
	rg *gin.RouterGroup,
	standardsHandler *handlers.StandardsHandler,
	onboardingHandler *handlers.OnboardingHandler,
	documentHandler *handlers.PricingDocumentHandler,
	adminHandler *handlers.AdminHandler,
) {
	standards := rg.Group(PathStandards)
	{
		standards.PUT("", standardsHandler.UpsertStandards)
		standards.GET("", standardsHandler.GetStandards)
	}

	rg.GET(PathProgress, onboardingHandler.GetProgress)

	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.UploadDocument)
		documents.GET("", documentHandler.ListDocuments)
		documents.DELETE("/:id", documentHandler.DeleteDocument)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/reset", adminHandler.ResetAccount)
	}
}
