package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/goals/domain"
	"github.com/creatorclub/cc-backend/internal/goals/service"
)

// Handler bundles the dependencies for goal HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	g, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		Name:          strings.TrimSpace(req.Name),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "goal": g})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "goals": h.svc.List(c.Request.Context())})
}

func (h *Handler) get(c *gin.Context) {
	g, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "goal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "goal": g, "percent": g.ProgressPercent()})
}

func (h *Handler) update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	g, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "goal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "goal": g})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "goal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) monthlyTarget(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "target": h.svc.MonthlyTarget(c.Request.Context())})
}

type targetReq struct {
	Target float64 `json:"target"`
}

func (h *Handler) setMonthlyTarget(c *gin.Context) {
	var req targetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.svc.SetMonthlyTarget(c.Request.Context(), req.Target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "target": req.Target})
}

func (h *Handler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.Summarize(c.Request.Context())})
}

func (h *Handler) progress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "progress": h.svc.Progress(c.Request.Context())})
}
