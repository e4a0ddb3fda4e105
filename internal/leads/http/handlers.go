package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/leads/domain"
	"github.com/creatorclub/cc-backend/internal/leads/service"
)

// Handler bundles the dependencies for lead HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	BrandName    string        `json:"brandName"`
	ContactName  string        `json:"contactName"`
	Email        string        `json:"email"`
	Website      string        `json:"website"`
	DealAmount   float64       `json:"dealAmount"`
	Status       domain.Status `json:"status"`
	Source       string        `json:"source"`
	FollowUpDate string        `json:"followUpDate"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.BrandName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	l, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		BrandName:    strings.TrimSpace(req.BrandName),
		ContactName:  req.ContactName,
		Email:        req.Email,
		Website:      req.Website,
		DealAmount:   req.DealAmount,
		Status:       req.Status,
		Source:       req.Source,
		FollowUpDate: req.FollowUpDate,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "lead": l})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "leads": h.svc.List(c.Request.Context())})
}

func (h *Handler) board(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "columns": h.svc.Board(c.Request.Context())})
}

func (h *Handler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.Summarize(c.Request.Context())})
}

func (h *Handler) get(c *gin.Context) {
	l, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lead": l})
}

func (h *Handler) update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	l, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lead": l})
}

type moveReq struct {
	Status domain.Status `json:"status"`
}

func (h *Handler) move(c *gin.Context) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	l, err := h.svc.Move(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lead": l})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
