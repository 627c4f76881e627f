package routes

import (
	"github.com/gin-gonic/gin"

	"swiftaid/internal/handlers"
)

// SetupDispatchRoutes registers the REST surface of the dispatch engine.
func SetupDispatchRoutes(r *gin.RouterGroup, dispatchHandler *handlers.DispatchHandler) {
	r.GET("/user", dispatchHandler.GetUser)
	r.GET("/activities", dispatchHandler.ListActivities)

	emergencies := r.Group("/emergencies")
	{
		emergencies.POST("", dispatchHandler.CreateEmergency)
		emergencies.GET("/:id", dispatchHandler.GetEmergency)
		emergencies.PATCH("/:id/status", dispatchHandler.UpdateStatus)
		emergencies.DELETE("/:id", dispatchHandler.CancelEmergency)
	}

	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("/nearby", dispatchHandler.NearbyHospitals)
	}
}
