package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/earnings/service"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

// Handler bundles the dependencies for earnings HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// frameParam resolves the optional ?timeframe= query, defaulting to the
// unbounded window.
func frameParam(c *gin.Context) (timeframe.Frame, bool) {
	raw := c.DefaultQuery("timeframe", string(timeframe.AllTime))
	f := timeframe.Frame(raw)
	return f, f.Valid()
}

func (h *Handler) list(c *gin.Context) {
	frame, ok := frameParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown timeframe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "earnings": h.svc.List(c.Request.Context(), frame)})
}

func (h *Handler) summary(c *gin.Context) {
	frame, ok := frameParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown timeframe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.Summarize(c.Request.Context(), frame)})
}

type createReq struct {
	ProjectName string        `json:"projectName"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Status      domain.Status `json:"status"`
	Source      domain.Source `json:"source"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.svc.CreateManual(c.Request.Context(), service.CreateInput{
		ProjectName: strings.TrimSpace(req.ProjectName),
		Amount:      req.Amount,
		Date:        req.Date,
		Status:      req.Status,
		Source:      req.Source,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "earning": e})
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "earning not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "earning": e})
}

type statusReq struct {
	Status domain.Status `json:"status"`
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "earning not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "earning": e})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "earning not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
