package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type TeamHandler interface {
	HandleCreateTeam(c *gin.Context)
	HandleGetTeam(c *gin.Context)
	HandleListTeams(c *gin.Context)
	HandleUpdateTeam(c *gin.Context)
	HandleDeleteTeam(c *gin.Context)
}

type teamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) TeamHandler {
	return &teamHandler{
		teamService: teamService,
	}
}

func (h *teamHandler) HandleCreateTeam(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	team, err := h.teamService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team created", team)
}

func (h *teamHandler) HandleGetTeam(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	team, err := h.teamService.Get(c.Request.Context(), principal, c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", team)
}

func (h *teamHandler) HandleListTeams(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	teams, err := h.teamService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", teams)
}

func (h *teamHandler) HandleUpdateTeam(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req types.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	team, err := h.teamService.Update(c.Request.Context(), principal, c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team updated", team)
}

func (h *teamHandler) HandleDeleteTeam(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.teamService.Delete(c.Request.Context(), principal, c.Param("teamId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team deleted", nil)
}
