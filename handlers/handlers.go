package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tent-on-rent-api/cart"
	"tent-on-rent-api/location"
	"tent-on-rent-api/middleware"
	"tent-on-rent-api/models"
	"tent-on-rent-api/session"
)

// Shared collaborators, wired once at startup.
var (
	Catalog  *models.Catalog
	Sessions *session.Store
	Resolver *location.Resolver
)

// Setup injects the loaded catalog, session store and location resolver.
func Setup(catalog *models.Catalog, store *session.Store, resolver *location.Resolver) {
	Catalog = catalog
	Sessions = store
	Resolver = resolver
}

// currentSession loads the caller's session; on a stale token it writes
// the 401 itself and reports false.
func currentSession(c *gin.Context) (string, models.Session, bool) {
	id := middleware.GetSessionID(c)
	s, ok := Sessions.Get(id)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found. Create a new session"})
		return "", models.Session{}, false
	}
	return id, s, true
}

// sessionView is the common response body for anything that returns the
// session state tree.
func sessionView(s models.Session) gin.H {
	return gin.H{
		"session":    s,
		"cart_count": len(s.Cart),
		"cart_total": cart.Total(s.Cart),
	}
}
