package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/service"
)

type ActivityHandler interface {
	HandleRecentActivity(c *gin.Context)
	HandleActivityFeed(c *gin.Context)
}

type activityHandler struct {
	activityService service.ActivityService
	feed            *service.WebSocketService
}

func NewActivityHandler(activityService service.ActivityService, feed *service.WebSocketService) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
		feed:            feed,
	}
}

func (h *activityHandler) HandleRecentActivity(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	activities, err := h.activityService.Recent(c.Request.Context(), principal.Company())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", activities)
}

// HandleActivityFeed upgrades to a websocket that streams the tenant's
// activity entries as they are recorded.
func (h *activityHandler) HandleActivityFeed(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	h.feed.HandleFeed(c.Writer, c.Request, principal.Company())
}
