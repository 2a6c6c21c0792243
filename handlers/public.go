package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tent-on-rent-api/cart"
	"tent-on-rent-api/catalog"
	"tent-on-rent-api/session"
	"tent-on-rent-api/statemachine"
)

// ListVendors returns the tent houses visible for the session's location,
// optionally narrowed by a free-text search term.
func ListVendors(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}

	term := c.Query("search")
	vendors := catalog.Filter(Catalog.TentHouses, s.Location, term)

	c.JSON(http.StatusOK, gin.H{
		"count":       len(vendors),
		"location":    s.Location,
		"tent_houses": vendors,
		"currency":    Catalog.AppConfig.Currency,
	})
}

// GetVendor returns a single tent house with its items and, for each
// item, the quantity already in the caller's cart.
func GetVendor(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tent house id"})
		return
	}
	vendor, found := catalog.FindVendor(Catalog.TentHouses, uint(id))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tent house not found"})
		return
	}

	inCart := make(map[string]int, len(vendor.Items))
	for _, item := range vendor.Items {
		if qty := cart.QuantityOf(s.Cart, item.Name, vendor.ID); qty > 0 {
			inCart[item.Name] = qty
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tent_house": vendor,
		"currency":   Catalog.AppConfig.Currency,
		"in_cart":    inCart,
	})
}

// ViewVendor selects a tent house and opens the details screen. An id
// absent from the catalog is a local not-found, not a crash.
func ViewVendor(c *gin.Context) {
	sid, _, ok := currentSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tent house id"})
		return
	}
	vendor, found := catalog.FindVendor(Catalog.TentHouses, uint(id))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tent house not found"})
		return
	}

	s, _ := Sessions.Apply(sid, session.ViewDetails{VendorID: vendor.ID})
	c.JSON(http.StatusOK, gin.H{
		"screen":     s.Screen,
		"tent_house": vendor,
	})
}

// GetCategories returns the quick-search category grid
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":      len(Catalog.Categories),
		"categories": Catalog.Categories,
	})
}

// GetStateMachineInfo returns the screen navigation graph for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{
			"from":    t.From,
			"to":      t.To,
			"trigger": t.Trigger,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine": info,
		"description":   "Screen Navigation State Machine",
	})
}
