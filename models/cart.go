package models

// CartLine is one cart entry. Name, Description, Price and ImageURL are
// snapshots taken from the item when it was added — a later catalog change
// must not retroactively reprice a cart.
type CartLine struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	VendorID    uint    `json:"tentHouseId"`
	VendorName  string  `json:"tentHouseName"`
	Quantity    int     `json:"quantity"`
}
