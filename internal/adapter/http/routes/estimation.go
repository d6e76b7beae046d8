package routes

import (
	"buildready/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathItems     = "/items"
	PathIssues    = "/issues"
)

func addEstimationRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	itemHandler *handlers.EstimateItemHandler,
	issueHandler *handlers.ValidationIssueHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)

		// Lifecycle commands.
		estimates.POST("/:id/validate", estimateHandler.ValidateEstimate)
		estimates.POST("/:id/submit", estimateHandler.SubmitEstimate)

		estimates.POST("/:id/items", itemHandler.AddItem)
		estimates.GET("/:id/issues", issueHandler.ListIssues)
	}

	items := rg.Group(PathItems)
	{
		items.PATCH("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}

	issues := rg.Group(PathIssues)
	{
		issues.POST("/:id/resolve", issueHandler.ResolveIssue)
	}
}
