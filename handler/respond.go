package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/middleware"
	"github.com/webblaze/projectflow-be/types"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, types.DataResponse{
		Status:  false,
		Message: err.Error(),
	})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.DataResponse{
		Status:  false,
		Message: message,
	})
}

// requirePrincipal fetches the authenticated account, replying 401 when
// the middleware did not run.
func requirePrincipal(c *gin.Context) (types.Principal, bool) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
	}
	return principal, ok
}
