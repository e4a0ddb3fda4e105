package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/projects/domain"
	"github.com/creatorclub/cc-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Name          string               `json:"name"`
	Compensation  float64              `json:"compensation"`
	DueDate       string               `json:"dueDate"`
	LeadSource    string               `json:"leadSource"`
	SignedDate    string               `json:"signedDate"`
	Status        domain.Status        `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	ClientEmail   string               `json:"clientEmail"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		Name:          strings.TrimSpace(req.Name),
		Compensation:  req.Compensation,
		DueDate:       req.DueDate,
		LeadSource:    req.LeadSource,
		SignedDate:    req.SignedDate,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		ClientEmail:   req.ClientEmail,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.List(c.Request.Context())})
}

func (h *Handler) board(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "columns": h.svc.Board(c.Request.Context())})
}

func (h *Handler) listView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "columns": h.svc.ListView(c.Request.Context())})
}

func (h *Handler) calendar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "days": h.svc.CalendarView(c.Request.Context())})
}

func (h *Handler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.Summarize(c.Request.Context())})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "dueBadge": service.DueBadgeFor(p.DueDate, time.Now())})
}

func (h *Handler) update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
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

	p, err := h.svc.Move(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

type paymentStatusReq struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

func (h *Handler) setPaymentStatus(c *gin.Context) {
	var req paymentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
