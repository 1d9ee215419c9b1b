package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/pkg/response"
)

// SearchHandler serves the global search across tasks, projects and users.
type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search returns matching tasks, projects and enhanced users.
// GET /search?query=
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searchService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, response.NewServerError("Error performing search", err))
		return
	}

	response.Success(c, result)
}
