package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

// Auth gates routes by the role carried in the token.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// RequireRoles lets the request through when the caller holds one of roles.
func (a *Auth) RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

func (a *Auth) SuperAdmin() gin.HandlerFunc {
	return a.RequireRoles(user.RoleSuperAdmin)
}

// Managers admits Super-Admin and Management, the roles that may edit
// reference data and see every form.
func (a *Auth) Managers() gin.HandlerFunc {
	return a.RequireRoles(user.RoleSuperAdmin, user.RoleManagement)
}
