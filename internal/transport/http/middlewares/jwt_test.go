package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	a "github.com/tonatiuh19/intelipadel-sub001/pkg/auth"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		sub, _ := c.Get("sub")
		c.JSON(http.StatusOK, gin.H{"sub": sub})
	})
	r.GET("/admin", JWTAuth(), RequireRole(a.RoleAdmin, a.RoleClubAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)

	tok, err := a.CreateAccessToken("user-1", a.RolePlayer, "p@club.test", "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(r, "/me", tok).Code)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	player, err := a.CreateAccessToken("user-1", a.RolePlayer, "p@club.test", "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", player).Code)

	admin, err := a.CreateAccessToken("user-2", a.RoleClubAdmin, "a@club.test", "club-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(r, "/admin", admin).Code)
}
