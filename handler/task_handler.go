package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type TaskHandler interface {
	HandleCreateTask(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleListOwnTasks(c *gin.Context)
	HandleListAllTasks(c *gin.Context)
	HandleListTaskHistory(c *gin.Context)
	HandleListOngoingTasks(c *gin.Context)
	HandleListMemberProjectTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleUpdateTasksByAssignee(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleDeleteTasksByAssignee(c *gin.Context)
}

type taskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

func (h *taskHandler) HandleCreateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	task, err := h.taskService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task created", task)
}

func (h *taskHandler) HandleGetTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	task, err := h.taskService.Get(c.Request.Context(), principal, c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", task)
}

func (h *taskHandler) HandleListOwnTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListOwn(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", tasks)
}

func (h *taskHandler) HandleListAllTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListAll(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", tasks)
}

func (h *taskHandler) HandleListTaskHistory(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListHistory(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", tasks)
}

func (h *taskHandler) HandleListOngoingTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListOngoing(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", tasks)
}

func (h *taskHandler) HandleListMemberProjectTasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListByMemberInProject(c.Request.Context(), principal,
		c.Param("projectId"), c.Param("teamMemberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", tasks)
}

func (h *taskHandler) HandleUpdateTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	task, err := h.taskService.Update(c.Request.Context(), principal, c.Param("taskId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task updated", task)
}

func (h *taskHandler) HandleUpdateTasksByAssignee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateTasksByAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	modified, err := h.taskService.UpdateByAssignee(c.Request.Context(), principal, c.Param("teamMemberId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Tasks updated", gin.H{"modifiedCount": modified})
}

func (h *taskHandler) HandleDeleteTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.DeleteTaskRequest
	// The body is optional; a bare delete has no reason attached.
	_ = c.ShouldBindJSON(&req)
	if err := h.taskService.Delete(c.Request.Context(), principal, c.Param("taskId"), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Task deleted", nil)
}

func (h *taskHandler) HandleDeleteTasksByAssignee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	deleted, err := h.taskService.DeleteByAssignee(c.Request.Context(), principal, c.Param("teamMemberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Tasks deleted", gin.H{"deletedCount": deleted})
}
