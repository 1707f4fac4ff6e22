package faq

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eduassist-backend/internal/shared/server/respond"
)

// Handler serves the static FAQ.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches FAQ routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/faq", h.list)
	rg.GET("/faq/answer", h.answer)
}

func (h *Handler) list(c *gin.Context) {
	respond.JSON(c, http.StatusOK, Entries)
}

func (h *Handler) answer(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	answer, ok := AnswerFor(question)
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "no answer for that question", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"question": question, "answer": answer})
}
