package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mailcraft/internal/repository"
)

type DraftsHandler struct {
	draftRepo *repository.DraftRepository
}

func NewDraftsHandler(draftRepo *repository.DraftRepository) *DraftsHandler {
	return &DraftsHandler{draftRepo: draftRepo}
}

// GetDrafts handles GET /drafts
func (h *DraftsHandler) GetDrafts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	drafts, err := h.draftRepo.ListByUser(c.Request.Context(), userID.(int), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load drafts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}
