package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/library/service"
)

// Handler bundles the dependencies for library HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) sounds(c *gin.Context) {
	filter := service.Filter{
		Query:         c.Query("q"),
		Categories:    c.QueryArray("category"),
		FavoritesOnly: c.Query("favorites") == "true",
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"sounds": h.svc.Sounds(c.Request.Context(), filter),
	})
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": h.svc.Categories()})
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	favorite, err := h.svc.ToggleFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "sound effect not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "favorite": favorite})
}

func (h *Handler) fonts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "fonts": h.svc.Fonts()})
}

func (h *Handler) ideas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "shelves": h.svc.Ideas()})
}
