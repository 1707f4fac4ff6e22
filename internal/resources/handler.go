package resources

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eduassist-backend/internal/classify"
	"eduassist-backend/internal/generate"
	"eduassist-backend/internal/render"
	"eduassist-backend/internal/shared/server/respond"
	"eduassist-backend/internal/shared/storage/object"
	"eduassist-backend/internal/translate"
)

// Handler wires HTTP handlers to the resource service.
type Handler struct {
	Svc   *Service
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches resource routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resources", h.create)
	rg.GET("/resources", h.list)
	rg.GET("/resources/:id", h.get)
	rg.GET("/resources/:id/download", h.download)
}

type createRequest struct {
	Query      string `json:"query"`
	Subject    string `json:"subject"`
	TargetLang string `json:"targetLang"`
	FileName   string `json:"fileName"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}

	resource, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Query:      req.Query,
		Subject:    req.Subject,
		TargetLang: req.TargetLang,
		FileName:   req.FileName,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
		case errors.Is(err, ErrUnsupportedLanguage):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported target language", nil)
		case errors.Is(err, ErrInvalidFileName):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		case errors.Is(err, classify.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "classification_unavailable", "format classification failed", nil)
		case errors.Is(err, generate.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "generation_unavailable", "content generation failed", nil)
		case errors.Is(err, translate.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "translation_unavailable", "translation failed", nil)
		case errors.Is(err, render.ErrEmptyContent):
			respond.Error(c, http.StatusInternalServerError, "render_error", "nothing to render", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resource", nil)
		}
		return
	}

	// Surface pipeline outcome to the request logging middleware.
	c.Set("resourceId", resource.ID)
	c.Set("formatLabel", string(resource.FormatLabel))

	respond.JSON(c, http.StatusCreated, toResourceResponse(resource))
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resources", nil)
		return
	}

	resp := make([]ResourceResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResourceResponse(item))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resource id is required", nil)
		return
	}

	resource, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resource not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resource", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResourceResponse(resource))
}

func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resource id is required", nil)
		return
	}

	resource, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resource not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resource", nil)
		}
		return
	}

	reader, err := h.Store.Open(c.Request.Context(), resource.StorageKey)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resource file", nil)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", pdfContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+resource.FileName+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
