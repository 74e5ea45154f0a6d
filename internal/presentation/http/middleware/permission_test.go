package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
)

func permissionRouter(user *entity.User, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if user != nil {
				c.Set("user", user)
			}
			c.Next()
		},
		RequirePermission(permission),
		func(c *gin.Context) { c.String(http.StatusOK, "ok") },
	)
	return r
}

func TestRequirePermission(t *testing.T) {
	cases := []struct {
		name       string
		user       *entity.User
		permission string
		wantStatus int
	}{
		{
			name:       "salesperson with the code",
			user:       &entity.User{Role: enum.RoleSalesperson, Permissions: entity.PermissionList{"POS"}},
			permission: "POS",
			wantStatus: http.StatusOK,
		},
		{
			name:       "salesperson without the code",
			user:       &entity.User{Role: enum.RoleSalesperson, Permissions: entity.PermissionList{"POS"}},
			permission: "USERS",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin with empty permission set",
			user:       &entity.User{Role: enum.RoleAdmin},
			permission: "USERS",
			wantStatus: http.StatusOK,
		},
		{
			name:       "administrative bypass",
			user:       &entity.User{Role: enum.RoleAdministrative},
			permission: "AUDIT_LOGS",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no user in context",
			user:       nil,
			permission: "POS",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			permissionRouter(tc.user, tc.permission).ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
