// Package cart implements the shopping-cart ledger: a flat, insertion-
// ordered list of lines keyed by (item name, vendor id). All operations
// are pure — they return a new slice and never mutate their input.
package cart

import (
	"errors"

	"tent-on-rent-api/models"
)

var (
	// ErrIndexOutOfRange is returned for an index that names no cart line.
	// Callers ignore it defensively; the cart is left untouched.
	ErrIndexOutOfRange = errors.New("cart index out of range")

	// ErrQuantityFloor is returned when an update would drop a quantity
	// below 1. Lines are deleted with Remove, never by zeroing quantity.
	ErrQuantityFloor = errors.New("quantity must be at least 1")
)

// Add puts one unit of item from the given vendor into the cart. If a line
// for (item name, vendor id) already exists its quantity is incremented in
// place; otherwise a new line with quantity 1 is appended. The returned
// message is the user-facing confirmation distinguishing the two cases.
func Add(lines []models.CartLine, item models.Item, vendor models.Vendor) ([]models.CartLine, string) {
	for i, line := range lines {
		if line.Name == item.Name && line.VendorID == vendor.ID {
			updated := make([]models.CartLine, len(lines))
			copy(updated, lines)
			updated[i].Quantity++
			return updated, item.Name + " quantity updated in cart"
		}
	}

	updated := make([]models.CartLine, len(lines), len(lines)+1)
	copy(updated, lines)
	updated = append(updated, models.CartLine{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		Quantity:    1,
	})
	return updated, item.Name + " added to cart"
}

// Remove deletes the line at index, preserving the relative order of the
// rest. The removed line is returned so the caller can name it.
func Remove(lines []models.CartLine, index int) ([]models.CartLine, models.CartLine, error) {
	if index < 0 || index >= len(lines) {
		return lines, models.CartLine{}, ErrIndexOutOfRange
	}
	removed := lines[index]
	updated := make([]models.CartLine, 0, len(lines)-1)
	updated = append(updated, lines[:index]...)
	updated = append(updated, lines[index+1:]...)
	return updated, removed, nil
}

// UpdateQuantity sets the quantity of the line at index. Quantities below
// 1 are rejected and the cart is returned unchanged.
func UpdateQuantity(lines []models.CartLine, index, quantity int) ([]models.CartLine, error) {
	if quantity < 1 {
		return lines, ErrQuantityFloor
	}
	if index < 0 || index >= len(lines) {
		return lines, ErrIndexOutOfRange
	}
	updated := make([]models.CartLine, len(lines))
	copy(updated, lines)
	updated[index].Quantity = quantity
	return updated, nil
}

// Total sums price × quantity over all lines. Prices were snapshotted when
// each line was added, so the total is independent of the live catalog.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// QuantityOf reports the quantity already in the cart for the given
// (item name, vendor id) pair, zero if absent. The details screen shows
// this next to every item.
func QuantityOf(lines []models.CartLine, itemName string, vendorID uint) int {
	for _, line := range lines {
		if line.Name == itemName && line.VendorID == vendorID {
			return line.Quantity
		}
	}
	return 0
}
