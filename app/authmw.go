package app

import (
	"net/http"

	"toolroom/directory"
	"toolroom/models"
	"toolroom/session"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

// AuthRequired resolves the session cookie to a directory user and puts
// the identity snapshot on the gin context.
func AuthRequired(sessions session.Store, dir directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		as, err := sessions.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
			return
		}

		// confirm the user still exists in the directory, once per request
		u, err := dir.FindUserByID(c.Request.Context(), as.UserID)
		if err != nil {
			_ = sessions.Delete(c.Request.Context(), ck.Value)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		c.Set("userID", u.ID)
		c.Set("userName", u.Name)
		c.Set("userRole", u.Role)
		c.Next()
	}
}

// RoleRequired gates a route group on the directory role set by
// AuthRequired.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("userRole")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		if r, _ := v.(string); r != role {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentActor rebuilds the identity snapshot stored by AuthRequired.
func CurrentActor(c *gin.Context) (models.Actor, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return models.Actor{}, false
	}
	name, _ := c.Get("userName")
	uid, _ := id.(string)
	uname, _ := name.(string)
	if uid == "" {
		return models.Actor{}, false
	}
	return models.Actor{ID: uid, Name: uname}, true
}
