package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/dashboard"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

// Handler bundles the dependencies for dashboard HTTP endpoints.
type Handler struct {
	svc *dashboard.Service
}

func New(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) overview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "overview": h.svc.Overview(c.Request.Context())})
}

func (h *Handler) kpis(c *gin.Context) {
	period := timeframe.Frame(c.DefaultQuery("period", string(timeframe.ThisMonth)))
	kpis, err := h.svc.KPIsFor(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "kpis": kpis})
}

func (h *Handler) chart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "chart": h.svc.MonthlyChart(c.Request.Context())})
}

// Register attaches dashboard routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.overview)
	rg.GET("/kpis", h.kpis)
	rg.GET("/chart", h.chart)
}
