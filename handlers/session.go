package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tent-on-rent-api/middleware"
	"tent-on-rent-api/models"
	"tent-on-rent-api/session"
	"tent-on-rent-api/statemachine"
)

// CreateSession starts a fresh session on the splash screen and returns
// the token all other endpoints require.
func CreateSession(c *gin.Context) {
	id, s := Sessions.Create()
	token, err := middleware.GenerateToken(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}
	body := sessionView(s)
	body["token"] = token
	body["app_config"] = Catalog.AppConfig
	c.JSON(http.StatusCreated, body)
}

// GetSession returns the current state tree
func GetSession(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionView(s))
}

// StartSession is the splash screen's get-started button: it moves the
// session to the login screen.
func StartSession(c *gin.Context) {
	id, _, ok := currentSession(c)
	if !ok {
		return
	}
	s, _ := Sessions.Apply(id, session.GetStarted{})
	c.JSON(http.StatusOK, gin.H{"screen": s.Screen})
}

type NavigateRequest struct {
	Screen models.Screen `json:"screen" binding:"required"`
}

// navigable are the screens reachable by direct navigation. Details is
// entered through ViewVendor so a vendor is always selected on it.
var navigable = map[models.Screen]bool{
	models.ScreenHome:    true,
	models.ScreenCart:    true,
	models.ScreenProfile: true,
	models.ScreenOrders:  true,
}

// NavigateScreen opens one of the top-level screens. There is no guard
// logic: an empty cart still opens the cart screen.
func NavigateScreen(c *gin.Context) {
	id, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.KnownScreen(req.Screen) || !navigable[req.Screen] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown screen: " + string(req.Screen)})
		return
	}

	s, _ := Sessions.Apply(id, session.Navigate{Screen: req.Screen})
	c.JSON(http.StatusOK, gin.H{"screen": s.Screen})
}

// BackHome returns from a secondary screen to home, clearing any selected
// vendor.
func BackHome(c *gin.Context) {
	id, _, ok := currentSession(c)
	if !ok {
		return
	}
	s, _ := Sessions.Apply(id, session.Back{})
	c.JSON(http.StatusOK, gin.H{"screen": s.Screen})
}

// GetOrders returns the session's order list. No checkout exists in the
// demo, so the list is always empty; the endpoint is here because the
// orders screen renders it.
func GetOrders(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(s.Orders),
		"orders": s.Orders,
	})
}
