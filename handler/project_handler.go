package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type ProjectHandler interface {
	HandleCreateProject(c *gin.Context)
	HandleGetProject(c *gin.Context)
	HandleListProjects(c *gin.Context)
	HandleListProjectsByMember(c *gin.Context)
	HandleUpdateProject(c *gin.Context)
	HandleSoftDeleteProject(c *gin.Context)
	HandlePermanentDeleteProject(c *gin.Context)

	HandleAddPhase(c *gin.Context)
	HandleUpdatePhaseStatus(c *gin.Context)
	HandleDeletePhase(c *gin.Context)
	HandleListPhases(c *gin.Context)
	HandleAddPhaseComment(c *gin.Context)
	HandleListPhaseComments(c *gin.Context)

	HandleAddSubtask(c *gin.Context)
	HandleEditSubtask(c *gin.Context)
	HandleUpdateSubtaskStatus(c *gin.Context)
	HandleDeleteSubtask(c *gin.Context)
	HandleListSubtasks(c *gin.Context)
	HandleSubtaskActivity(c *gin.Context)
}

type projectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

func (h *projectHandler) HandleCreateProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Project created", project)
}

func (h *projectHandler) HandleGetProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), principal, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", project)
}

func (h *projectHandler) HandleListProjects(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	projects, err := h.projectService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", projects)
}

func (h *projectHandler) HandleListProjectsByMember(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	projects, err := h.projectService.ListByMember(c.Request.Context(), principal, c.Param("teamMemberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", projects)
}

func (h *projectHandler) HandleUpdateProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	project, err := h.projectService.Update(c.Request.Context(), principal, c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Project updated", project)
}

func (h *projectHandler) HandleSoftDeleteProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.projectService.SoftDelete(c.Request.Context(), principal, c.Param("projectId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Project moved to trash", nil)
}

func (h *projectHandler) HandlePermanentDeleteProject(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	result, err := h.projectService.PermanentDelete(c.Request.Context(), principal, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Project permanently deleted", result)
}

func (h *projectHandler) HandleAddPhase(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.AddPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	phase, err := h.projectService.AddPhase(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Phase added", phase)
}

func (h *projectHandler) HandleUpdatePhaseStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdatePhaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	phase, err := h.projectService.UpdatePhaseStatus(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Phase status updated", phase)
}

func (h *projectHandler) HandleDeletePhase(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.DeletePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.projectService.DeletePhase(c.Request.Context(), principal, &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Phase deleted", nil)
}

func (h *projectHandler) HandleListPhases(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	phases, err := h.projectService.ListPhases(c.Request.Context(), principal, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", phases)
}

func (h *projectHandler) HandleAddPhaseComment(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.AddPhaseCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	comment, err := h.projectService.AddPhaseComment(c.Request.Context(), principal,
		c.Param("projectId"), c.Param("phaseId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Comment added", comment)
}

func (h *projectHandler) HandleListPhaseComments(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	comments, err := h.projectService.ListPhaseComments(c.Request.Context(), principal,
		c.Param("projectId"), c.Param("phaseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", comments)
}

// readFormImages pulls raw image bytes out of a multipart form field.
func readFormImages(form *multipart.Form, field string) ([][]byte, error) {
	var images [][]byte
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}

func (h *projectHandler) HandleAddSubtask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Invalid multipart form")
		return
	}
	req := types.AddSubtaskRequest{
		PhaseID:        c.PostForm("phase_id"),
		SubtaskTitle:   c.PostForm("subtask_title"),
		Description:    c.PostForm("description"),
		AssignedTeam:   c.PostForm("assigned_team"),
		AssignedMember: c.PostForm("assigned_member"),
	}
	if req.Images, err = readFormImages(form, "images"); err != nil {
		respondBadRequest(c, "Could not read uploaded images")
		return
	}
	subtask, err := h.projectService.AddSubtask(c.Request.Context(), principal, c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Subtask added", subtask)
}

func (h *projectHandler) HandleEditSubtask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Invalid multipart form")
		return
	}
	req := types.EditSubtaskRequest{
		SubtaskID:      c.PostForm("subtask_id"),
		SubtaskTitle:   c.PostForm("subtask_title"),
		Description:    c.PostForm("description"),
		AssignedMember: c.PostForm("assigned_member"),
		ExistingImages: c.PostFormArray("existing_images"),
	}
	if req.NewImages, err = readFormImages(form, "new_images"); err != nil {
		respondBadRequest(c, "Could not read uploaded images")
		return
	}
	subtask, err := h.projectService.EditSubtask(c.Request.Context(), principal, c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Subtask updated", subtask)
}

func (h *projectHandler) HandleUpdateSubtaskStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateSubtaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := h.projectService.UpdateSubtaskStatus(c.Request.Context(), principal, c.Param("projectId"), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Subtask status updated", nil)
}

func (h *projectHandler) HandleDeleteSubtask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.projectService.DeleteSubtask(c.Request.Context(), principal,
		c.Param("projectId"), c.Param("subtaskId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Subtask deleted", nil)
}

func (h *projectHandler) HandleListSubtasks(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	subtasks, err := h.projectService.ListSubtasks(c.Request.Context(), principal, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", subtasks)
}

func (h *projectHandler) HandleSubtaskActivity(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	entries, err := h.projectService.SubtaskActivity(c.Request.Context(), principal, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", entries)
}
