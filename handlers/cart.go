package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tent-on-rent-api/cart"
	"tent-on-rent-api/catalog"
	"tent-on-rent-api/models"
	"tent-on-rent-api/session"
)

type AddCartItemRequest struct {
	TentHouseID uint   `json:"tent_house_id" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the cart lines with count and total
func GetCart(c *gin.Context) {
	_, s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(s.Cart),
		"cart":     s.Cart,
		"total":    cart.Total(s.Cart),
		"currency": Catalog.AppConfig.Currency,
	})
}

// AddCartItem puts one unit of an item in the cart, merging with an
// existing line for the same (item name, tent house).
func AddCartItem(c *gin.Context) {
	sid, s, ok := currentSession(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, found := catalog.FindVendor(Catalog.TentHouses, req.TentHouseID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tent house not found"})
		return
	}
	var item *models.Item
	for i := range vendor.Items {
		if vendor.Items[i].Name == req.ItemName {
			item = &vendor.Items[i]
			break
		}
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in this tent house"})
		return
	}

	// The confirmation message depends on whether a line already existed.
	message := item.Name + " added to cart"
	if cart.QuantityOf(s.Cart, item.Name, vendor.ID) > 0 {
		message = item.Name + " quantity updated in cart"
	}

	s, _ = Sessions.Apply(sid, session.AddToCart{Item: *item, Vendor: vendor})
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"count":   len(s.Cart),
		"cart":    s.Cart,
	})
}

// UpdateCartItem sets the quantity of the line at the given index.
// Quantities below 1 are rejected; remove the line instead.
func UpdateCartItem(c *gin.Context) {
	sid, s, ok := currentSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := cart.UpdateQuantity(s.Cart, index, req.Quantity); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s, _ = Sessions.Apply(sid, session.UpdateQuantity{Index: index, Quantity: req.Quantity})
	c.JSON(http.StatusOK, gin.H{
		"cart":  s.Cart,
		"total": cart.Total(s.Cart),
	})
}

// RemoveCartItem deletes the line at the given index. An out-of-range
// index leaves the cart untouched.
func RemoveCartItem(c *gin.Context) {
	sid, s, ok := currentSession(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
		return
	}

	_, removed, rmErr := cart.Remove(s.Cart, index)
	if rmErr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": rmErr.Error()})
		return
	}

	s, _ = Sessions.Apply(sid, session.RemoveFromCart{Index: index})
	c.JSON(http.StatusOK, gin.H{
		"message": removed.Name + " removed from cart",
		"count":   len(s.Cart),
		"cart":    s.Cart,
	})
}
