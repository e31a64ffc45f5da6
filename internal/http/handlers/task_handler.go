package handlers

import (
	"strconv"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *services.TaskService
}

type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": tasks})
}

// Create attributes the new task to the authenticated caller. Any user_id in
// the request body is ignored.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), c.GetString("username"), req.Title, req.Description)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "task added successfully",
		"data":    task,
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "task id must be an integer")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	username := c.GetString("username")
	role := c.GetString("role")
	if err := h.tasks.Update(c.Request.Context(), username, role, id, req.Title, req.Description); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "task updated successfully")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "task id must be an integer")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "task deleted successfully")
}
