package router

import (
	"github.com/gin-gonic/gin"

	"github.com/diconnect/diconnect/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	groupHandler *handler.GroupHandler,
	pairUpHandler *handler.PairUpHandler,
) *gin.Engine {
	r := gin.Default()

	// Resource group endpoints
	r.POST("/groups/create", groupHandler.CreateGroup)
	r.GET("/groups/get", groupHandler.GetGroup)
	r.GET("/groups/list", groupHandler.ListGroups)
	r.POST("/groups/update", groupHandler.UpdateGroup)

	// Pair-up participation endpoints
	r.POST("/pairup/pause", pairUpHandler.Pause)
	r.POST("/pairup/resume", pairUpHandler.Resume)
	r.GET("/pairup/status", pairUpHandler.Status)

	return r
}
