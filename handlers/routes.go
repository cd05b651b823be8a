package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api and the metrics handler, if any, at /metrics.
func RegisterRoutes(router *gin.Engine, h *APIHandler, metricsHandler http.Handler) {
	api := router.Group("/api")
	{
		// Roster routes
		api.POST("/rosters", h.UploadRoster)
		api.GET("/rosters/:rosterId", h.GetRoster)
		api.DELETE("/rosters/:rosterId", h.DeleteRoster)

		// Grouping routes
		api.POST("/rosters/:rosterId/groups", h.FormRosterGroups)
		api.GET("/rosters/:rosterId/groups/export", h.ExportRosterGroups)
		api.POST("/groups", h.FormGroups)

		api.GET("/ping", PingHandler)
	}

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
