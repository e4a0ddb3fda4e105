package http

import "github.com/gin-gonic/gin"

// Register attaches forum routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", h.categories)
	rg.GET("/posts", h.feed)
	rg.POST("/posts", h.create)
	rg.GET("/posts/:id", h.get)
	rg.POST("/posts/:id/vote", h.vote)
	rg.GET("/posts/:id/replies", h.replies)
	rg.POST("/posts/:id/replies", h.reply)
}
