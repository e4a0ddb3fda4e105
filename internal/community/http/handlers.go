package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorclub/cc-backend/internal/community/domain"
	"github.com/creatorclub/cc-backend/internal/community/service"
)

// Handler bundles the dependencies for forum HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": h.svc.Categories()})
}

func (h *Handler) feed(c *gin.Context) {
	category := domain.Category(c.DefaultQuery("category", string(domain.CategoryWorkOpportunities)))
	by := domain.Sort(c.DefaultQuery("sort", string(domain.SortHot)))

	posts, err := h.svc.Feed(category, by)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "posts": posts})
}

type createReq struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category domain.Category `json:"category"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Create(service.CreateInput{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "post": p})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "post": p})
}

type voteReq struct {
	Direction domain.Vote `json:"direction"`
}

func (h *Handler) vote(c *gin.Context) {
	var req voteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Vote(c.Param("id"), req.Direction)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "post": p})
}

func (h *Handler) replies(c *gin.Context) {
	rs, err := h.svc.Replies(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "replies": rs})
}

type replyReq struct {
	Content string `json:"content"`
}

func (h *Handler) reply(c *gin.Context) {
	var req replyReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	r, err := h.svc.Reply(c.Param("id"), strings.TrimSpace(req.Content))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "reply": r})
}
