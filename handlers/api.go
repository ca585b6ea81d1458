package handlers

import (
	"net/http"

	"github.com/aetherx/backend/internal/status"
	"github.com/gin-gonic/gin"
)

const rootMessage = "AetherX API - Where Intelligence Meets Imagination"

// statusListLimit caps GET /status listings.
const statusListLimit = 1000

// StatusCheckCreate is the POST /status request body
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

// APIHandler serves the root identity endpoint and status checks
type APIHandler struct {
	statusSvc *status.Service
}

func NewAPIHandler(s *status.Service) *APIHandler {
	return &APIHandler{statusSvc: s}
}

func (h *APIHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.POST("/status", h.CreateStatusCheck)
	rg.GET("/status", h.ListStatusChecks)
}

func (h *APIHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

func (h *APIHandler) CreateStatusCheck(c *gin.Context) {
	var req StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check, err := h.statusSvc.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *APIHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.statusSvc.List(c.Request.Context(), statusListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
