package http

import (
	"github.com/gin-gonic/gin"

	"errand-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Routes that reach the language model are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	errands := rg.Group("/errands")
	{
		errands.POST("/plan", mw.RateLimit(), h.Plan)
		errands.POST("/extract", mw.RateLimit(), h.Extract)

		errands.GET("/history", h.ListHistory)
		errands.PATCH("/history/:id/toggle", h.ToggleHistory)
		errands.DELETE("/history", h.ClearHistory)

		errands.GET("/route/latest", h.LatestRoute)
		errands.GET("/route/latest/points", h.LatestRoutePoints)
	}
}
