package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/pkg/response"
)

type TaskHandler struct {
	taskService     *services.TaskService
	activityService *services.ActivityService
}

func NewTaskHandler(taskService *services.TaskService, activityService *services.ActivityService) *TaskHandler {
	return &TaskHandler{taskService: taskService, activityService: activityService}
}

func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("taskId"), 10, 32)
	if err != nil {
		response.Error(c, response.NewBadRequest("invalid task id"))
		return 0, false
	}
	return uint(id), true
}

// List returns the tasks of one project
// GET /tasks?projectId=
func (h *TaskHandler) List(c *gin.Context) {
	var req services.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "projectId query parameter is required")
		return
	}

	tasks, err := h.taskService.ListByProject(c.Request.Context(), req.ProjectID)
	if err != nil {
		response.Error(c, response.NewServerError("Error retrieving tasks", err))
		return
	}

	response.Success(c, tasks)
}

// Create creates a task
// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) || errors.Is(err, services.ErrInvalidPriority) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, response.NewServerError("Error creating a task", err))
		return
	}

	response.Created(c, task)
}

// UpdateStatus moves a task to another status column
// PATCH /tasks/:taskId/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req services.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), id, req.Status)
	switch {
	case err == nil:
		response.Success(c, task)
	case errors.Is(err, services.ErrInvalidStatus):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		response.Error(c, response.NewNotFound(err.Error()))
	default:
		response.Error(c, response.NewServerError("Error updating tasks", err))
	}
}

// Activity returns the history of a task
// GET /tasks/:taskId/activity
func (h *TaskHandler) Activity(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	entries, err := h.activityService.ListByTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, response.NewServerError("Error retrieving task activity", err))
		return
	}

	response.Success(c, entries)
}
