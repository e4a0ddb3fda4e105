package http

import "github.com/gin-gonic/gin"

// Register attaches lead routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/board", h.board)
	rg.GET("/summary", h.summary)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	rg.POST("/:id/move", h.move)
	rg.DELETE("/:id", h.delete)
}
