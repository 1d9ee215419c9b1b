package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/pkg/response"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns all projects
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		response.Error(c, response.NewServerError("Error retrieving projects", err))
		return
	}

	response.Success(c, projects)
}

// Create creates a new project
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, response.NewServerError("Error creating a project", err))
		return
	}

	response.Created(c, project)
}
