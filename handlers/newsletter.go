package handlers

import (
	"net/http"

	"github.com/aetherx/backend/internal/newsletter"
	"github.com/aetherx/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// subscriberListLimit caps GET /newsletter/subscribers listings.
const subscriberListLimit = 1000

// SubscribeRequest is the POST /newsletter/subscribe request body.
// Email format is validated here, before the registry runs.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// NewsletterHandler holds dependencies
type NewsletterHandler struct {
	svc *newsletter.Service
}

func NewNewsletterHandler(s *newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{svc: s}
}

// Register routes under /newsletter
func (h *NewsletterHandler) Register(rg *gin.RouterGroup) {
	n := rg.Group("/newsletter")
	n.POST("/subscribe", h.Subscribe)
	n.GET("/count", h.Count)
	n.GET("/subscribers", h.Subscribers)
}

// Subscribe accepts a waitlist signup. A duplicate email is a 200 with
// success=false, not an error.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Subscribe(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		logger.Errorf("newsletter subscribe error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": res.Accepted, "message": res.Message, "id": res.ID})
}

func (h *NewsletterHandler) Count(c *gin.Context) {
	count, err := h.svc.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count subscriptions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NewsletterHandler) Subscribers(c *gin.Context) {
	subs, err := h.svc.Subscribers(c.Request.Context(), subscriberListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subscribers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "total": len(subs)})
}
