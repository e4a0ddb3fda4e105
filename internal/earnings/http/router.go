package http

import "github.com/gin-gonic/gin"

// Register attaches earnings routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/summary", h.summary)
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
	rg.POST("/:id/status", h.setStatus)
	rg.DELETE("/:id", h.delete)
}
