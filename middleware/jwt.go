package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
)

const principalContextKey = "principal"

// AuthMiddleware parses the Bearer token and loads the account it names
// into the request context. Handlers read it back with Principal(c).
func AuthMiddleware(jwt *utils.JWTManager, principals repository.PrincipalRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := jwt.ParseAuthToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid or expired token",
			})
			return
		}

		principal, err := principals.FindByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Account no longer exists",
			})
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// Principal returns the authenticated account stored by AuthMiddleware.
func Principal(c *gin.Context) (types.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return nil, false
	}
	principal, ok := v.(types.Principal)
	return principal, ok
}
