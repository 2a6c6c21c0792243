package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tent-on-rent-api/config"
	"tent-on-rent-api/models"
	"tent-on-rent-api/session"
)

type LoginRequest struct {
	Mobile string `json:"mobile"`
}

// Login performs the simulated authentication: a fixed delay, then a
// generated demo user. There are no credentials to check; an empty body
// is the "skip login" path.
func Login(c *gin.Context) {
	id, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req LoginRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// Simulated authentication delay
	select {
	case <-c.Request.Context().Done():
		return
	case <-time.After(config.LoginDelay):
	}

	user := models.User{
		UID:    "demo-user-" + uuid.NewString(),
		Mobile: req.Mobile,
	}
	s, ok := Sessions.Apply(id, session.LoggedIn{User: user})
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found. Create a new session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully!",
		"user":    s.User,
		"screen":  s.Screen,
	})
}

// Logout resets the session to its initial empty values and returns to
// the login screen.
func Logout(c *gin.Context) {
	id, _, ok := currentSession(c)
	if !ok {
		return
	}
	s, _ := Sessions.Apply(id, session.Logout{})
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
		"screen":  s.Screen,
	})
}

// GetProfile returns the demo user stub of the current session
func GetProfile(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}
	if s.User == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": s.User})
}
