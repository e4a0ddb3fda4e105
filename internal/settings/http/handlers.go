package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/settings/domain"
	"github.com/creatorclub/cc-backend/internal/settings/service"
)

// Handler bundles the dependencies for settings HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) currency(c *gin.Context) {
	cur := h.svc.Currency(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "currency": cur, "symbol": cur.Symbol()})
}

type currencyReq struct {
	Currency domain.Currency `json:"currency"`
}

func (h *Handler) setCurrency(c *gin.Context) {
	var req currencyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.svc.SetCurrency(c.Request.Context(), req.Currency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "currency": req.Currency, "symbol": req.Currency.Symbol()})
}

func (h *Handler) currencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "currencies": domain.Currencies})
}

func (h *Handler) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": h.svc.Profile(c.Request.Context())})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": h.svc.UpdateProfile(c.Request.Context(), req)})
}
