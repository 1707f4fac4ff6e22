package suggestions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eduassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the suggestions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.create)
	rg.GET("/suggestions", h.list)
}

type createRequest struct {
	Subject      string `json:"subject"`
	Grade        string `json:"grade"`
	ResourceType string `json:"resourceType"`
	Description  string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	suggestion, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Subject:      req.Subject,
		Grade:        req.Grade,
		ResourceType: req.ResourceType,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "subject and description are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save suggestion", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toSuggestionResponse(suggestion))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list suggestions", nil)
		return
	}

	resp := make([]SuggestionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toSuggestionResponse(item))
	}

	respond.JSON(c, http.StatusOK, resp)
}
