package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	adminports "github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/respond"
)

// SessionCookieName is the dashboard session cookie set on login.
const SessionCookieName = "adminSession"

// sessionCookieMaxAge matches the server-side session TTL.
const sessionCookieMaxAge = 3600

// adminUsernameKey is the gin context key holding the authenticated username.
const adminUsernameKey = "adminUsername"

// AdminAPI wires HTTP transport with the admins bounded context service.
type AdminAPI struct {
	service adminports.Service
}

// NewAdminAPI creates an AdminAPI backed by the provided service.
func NewAdminAPI(service adminports.Service) AdminAPI {
	return AdminAPI{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Post /api/admin-login
// Check credentials and issue the dashboard session cookie
func (api *AdminAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, adminports.ErrInvalidCredentials) {
			respond.Fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respond.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	respond.OK(c, http.StatusOK, "Login successful", nil)
}

// Post /api/admin-logout
// Drop the session behind the cookie and clear it
func (api *AdminAPI) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err == nil && token != "" {
		_ = api.service.Logout(c.Request.Context(), token)
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	respond.OK(c, http.StatusOK, "Logged out", nil)
}

// RequireSession gates admin routes on a live session cookie.
func (api *AdminAPI) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			respond.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		username, err := api.service.VerifySession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, adminports.ErrSessionNotFound) {
				respond.Fail(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				respond.Fail(c, http.StatusInternalServerError, "Internal Server Error")
			}
			c.Abort()
			return
		}
		c.Set(adminUsernameKey, username)
		c.Next()
	}
}
