package handlers

import (
	"net/http"

	"github.com/aetherx/backend/internal/launch"
	"github.com/gin-gonic/gin"
)

// LaunchConfigRequest is the POST /launch/config request body
type LaunchConfigRequest struct {
	LaunchDate string `json:"launch_date" binding:"required"`
}

// LaunchHandler holds dependencies
type LaunchHandler struct {
	svc *launch.Service
}

func NewLaunchHandler(s *launch.Service) *LaunchHandler {
	return &LaunchHandler{svc: s}
}

// Register routes under /launch
func (h *LaunchHandler) Register(rg *gin.RouterGroup) {
	l := rg.Group("/launch")
	l.GET("/config", h.Get)
	l.POST("/config", h.Set)
}

func (h *LaunchHandler) Get(c *gin.Context) {
	cfg, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load launch config"})
		return
	}
	resp := gin.H{"launch_date": cfg.LaunchDate}
	if !cfg.UpdatedAt.IsZero() {
		resp["updated_at"] = cfg.UpdatedAt
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LaunchHandler) Set(c *gin.Context) {
	var req LaunchConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := h.svc.Set(c.Request.Context(), req.LaunchDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store launch config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "launch_date": cfg.LaunchDate})
}
