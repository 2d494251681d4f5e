package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type EmployeeHandler interface {
	HandleAddEmployee(c *gin.Context)
	HandleFirstLogin(c *gin.Context)
	HandleGetEmployee(c *gin.Context)
	HandleListEmployees(c *gin.Context)
	HandleListByRole(c *gin.Context)
	HandleEditEmployee(c *gin.Context)
	HandleDeleteEmployee(c *gin.Context)
}

type employeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) EmployeeHandler {
	return &employeeHandler{
		employeeService: employeeService,
	}
}

func (h *employeeHandler) HandleAddEmployee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	employee, err := h.employeeService.Add(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee added, credentials emailed", employee)
}

func (h *employeeHandler) HandleFirstLogin(c *gin.Context) {
	var req types.EmployeeFirstLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	employee, err := h.employeeService.FirstLogin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Password set, you can now log in", employee)
}

func (h *employeeHandler) HandleGetEmployee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.Get(c.Request.Context(), principal, c.Param("teamMemberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", employee)
}

func (h *employeeHandler) HandleListEmployees(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", employees)
}

func (h *employeeHandler) HandleListByRole(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListByRole(c.Request.Context(), principal, c.Param("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", employees)
}

func (h *employeeHandler) HandleEditEmployee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.EditEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	employee, err := h.employeeService.Edit(c.Request.Context(), principal, c.Param("teamMemberId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee updated", employee)
}

func (h *employeeHandler) HandleDeleteEmployee(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), principal, c.Param("teamMemberId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee removed", nil)
}
