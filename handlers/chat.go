package handlers

import (
	"net/http"

	"github.com/aetherx/backend/internal/chat"
	"github.com/gin-gonic/gin"
)

// historyListLimit caps GET /chat/history responses.
const historyListLimit = 100

// ChatRequest is the POST /chat request body
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatHandler holds dependencies
type ChatHandler struct {
	svc *chat.Service
}

func NewChatHandler(s *chat.Service) *ChatHandler {
	return &ChatHandler{svc: s}
}

// Register routes under /chat
func (h *ChatHandler) Register(rg *gin.RouterGroup) {
	ch := rg.Group("/chat")
	ch.POST("", h.Converse)
	ch.GET("/history/:session_id", h.History)
	ch.DELETE("/history/:session_id", h.Clear)
}

// Converse always answers 200; gateway failures are absorbed by the chat
// service and surface as a canned reply.
func (h *ChatHandler) Converse(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := h.svc.Converse(c.Request.Context(), req.SessionID, req.Message)
	c.JSON(http.StatusOK, gin.H{"response": reply, "session_id": req.SessionID})
}

func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("session_id")
	turns, err := h.svc.History(c.Request.Context(), sessionID, historyListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	if turns == nil {
		turns = []chat.Turn{}
	}
	c.JSON(http.StatusOK, gin.H{"history": turns, "session_id": sessionID})
}

func (h *ChatHandler) Clear(c *gin.Context) {
	sessionID := c.Param("session_id")
	deleted, err := h.svc.Clear(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "session_id": sessionID})
}
