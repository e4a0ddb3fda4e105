package http

import "github.com/gin-gonic/gin"

// Register attaches settings routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/currency", h.currency)
	rg.PUT("/currency", h.setCurrency)
	rg.GET("/currencies", h.currencies)
	rg.GET("/profile", h.profile)
	rg.PUT("/profile", h.updateProfile)
}
