package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tent-on-rent-api/catalog"
	"tent-on-rent-api/location"
	"tent-on-rent-api/session"
)

type SelectLocationRequest struct {
	City string `json:"city" binding:"required"`
}

type DetectLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ListCities returns the supported and popular city lists, plus search
// results when a term is given.
func ListCities(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}

	body := gin.H{
		"current":          s.Location,
		"supported_cities": Catalog.AppConfig.SupportedCities,
		"popular_cities":   Catalog.AppConfig.PopularCities,
	}
	if term := c.Query("search"); term != "" {
		body["results"] = catalog.FilterCities(Catalog.AppConfig.SupportedCities, term)
	}
	c.JSON(http.StatusOK, body)
}

// SelectLocation is a manual city pick from the location selector. It
// supersedes any detection still in flight.
func SelectLocation(c *gin.Context) {
	sid, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, _ := Sessions.Apply(sid, session.SelectLocation{City: req.City})
	c.JSON(http.StatusOK, gin.H{
		"message":  "Location changed to " + s.Location,
		"location": s.Location,
	})
}

// DetectLocation resolves the coordinates sent by the client to a
// supported city and applies it to the session. Missing coordinates mean
// the device denied or failed geolocation; like every other failure here
// that degrades to the default city rather than erroring.
func DetectLocation(c *gin.Context) {
	sid, _, ok := currentSession(c)
	if !ok {
		return
	}

	var req DetectLocationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	seq, ok := Sessions.BeginLocationChange(sid)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found. Create a new session"})
		return
	}

	resolver := *Resolver
	resolver.Geolocator = requestGeolocator{req: req}
	city := resolver.Resolve(c.Request.Context())

	// A stale sequence means a newer change won the race; the reducer
	// drops the result and we report whatever location is current.
	s, _ := Sessions.Apply(sid, session.LocationResolved{City: city, Seq: seq})
	c.JSON(http.StatusOK, gin.H{
		"message":  "Location changed to " + s.Location,
		"resolved": city,
		"location": s.Location,
	})
}

// requestGeolocator adapts coordinates posted by the client to the
// resolver's platform-capability interface.
type requestGeolocator struct {
	req DetectLocationRequest
}

func (g requestGeolocator) CurrentPosition(_ context.Context, _ location.GeolocateOptions) (location.Coordinates, error) {
	if g.req.Latitude == nil || g.req.Longitude == nil {
		return location.Coordinates{}, errors.New("geolocation unavailable or denied")
	}
	return location.Coordinates{
		Latitude:  *g.req.Latitude,
		Longitude: *g.req.Longitude,
	}, nil
}
