package http

import "github.com/gin-gonic/gin"

// Register attaches goal routes to the given router group. The monthly
// target routes live here too since the dashboard goal widget reads them.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/summary", h.summary)
	rg.GET("/monthly-target", h.monthlyTarget)
	rg.PUT("/monthly-target", h.setMonthlyTarget)
	rg.GET("/progress", h.progress)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
