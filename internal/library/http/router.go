package http

import "github.com/gin-gonic/gin"

// Register attaches library routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/sfx", h.sounds)
	rg.GET("/sfx/categories", h.categories)
	rg.POST("/sfx/:id/favorite", h.toggleFavorite)
	rg.GET("/fonts", h.fonts)
	rg.GET("/ideas", h.ideas)
}
