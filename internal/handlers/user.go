package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/pkg/response"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, response.NewServerError("Error retrieving users", err))
		return
	}

	response.Success(c, users)
}

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		response.Error(c, response.NewServerError("Error retrieving teams", err))
		return
	}

	response.Success(c, teams)
}
