package middleware

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoleRouter(role string, required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	})
	r.Use(CheckRoles(required...))
	r.GET("/guarded", func(c *gin.Context) {
		response.Success(c, nil)
	})
	return r
}

func getGuarded(t *testing.T, r *gin.Engine) dto.Response {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCheckRoles_Allowed(t *testing.T) {
	r := setupRoleRouter(consts.RoleAdmin, consts.RoleModerator, consts.RoleAdmin)
	resp := getGuarded(t, r)
	assert.Equal(t, response.Ok, resp.Code)
}

func TestCheckRoles_Forbidden(t *testing.T) {
	r := setupRoleRouter(consts.RoleUser, consts.RoleModerator, consts.RoleAdmin)
	resp := getGuarded(t, r)
	assert.Equal(t, response.Forbidden, resp.Code)
}

func TestCheckRoles_NoRole(t *testing.T) {
	r := setupRoleRouter("", consts.RoleAdmin)
	resp := getGuarded(t, r)
	assert.Equal(t, response.Forbidden, resp.Code)
}
