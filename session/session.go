// Package session holds the per-visitor state tree and the pure
// state-transition function that applies user actions to it.
package session

import (
	"tent-on-rent-api/cart"
	"tent-on-rent-api/models"
)

// New returns the initial session: splash screen, default city, empty
// cart and orders, no user.
func New(defaultCity string) models.Session {
	return models.Session{
		Screen:   models.ScreenSplash,
		Location: defaultCity,
		Cart:     []models.CartLine{},
		Orders:   []models.Order{},
	}
}

// Action is one user interaction. Apply dispatches over the closed set of
// concrete action types below; an unknown action leaves the session
// unchanged.
type Action interface {
	isAction()
}

// GetStarted moves from the splash screen to login.
type GetStarted struct{}

// LoggedIn records the demo user stub and lands on home.
type LoggedIn struct {
	User models.User
}

// ViewDetails selects a vendor and opens the details screen.
type ViewDetails struct {
	VendorID uint
}

// Back returns to home, dropping any selected vendor.
type Back struct{}

// Navigate opens one of the top-level screens (home, cart, profile,
// orders). Navigation is unconditional; an empty cart still opens cart.
type Navigate struct {
	Screen models.Screen
}

// SelectLocation is a manual city pick. It supersedes any in-flight
// location detection.
type SelectLocation struct {
	City string
}

// LocationResolved carries the result of a detect-current-location run
// together with the sequence number issued when the run started. A stale
// sequence means a newer change happened meanwhile and the result is
// discarded.
type LocationResolved struct {
	City string
	Seq  uint64
}

// AddToCart adds one unit of an item, merging with an existing line for
// the same (item name, vendor id).
type AddToCart struct {
	Item   models.Item
	Vendor models.Vendor
}

// RemoveFromCart deletes the cart line at Index.
type RemoveFromCart struct {
	Index int
}

// UpdateQuantity sets the quantity of the cart line at Index.
type UpdateQuantity struct {
	Index    int
	Quantity int
}

// Logout clears user, cart and orders and returns to the login screen.
type Logout struct{}

func (GetStarted) isAction()       {}
func (LoggedIn) isAction()         {}
func (ViewDetails) isAction()      {}
func (Back) isAction()             {}
func (Navigate) isAction()         {}
func (SelectLocation) isAction()   {}
func (LocationResolved) isAction() {}
func (AddToCart) isAction()        {}
func (RemoveFromCart) isAction()   {}
func (UpdateQuantity) isAction()   {}
func (Logout) isAction()           {}

// Apply is the session state machine: a pure function from (session,
// action) to the next session. No transition is ever rejected; invalid
// cart indices and stale location results are ignored defensively.
func Apply(s models.Session, a Action) models.Session {
	switch a := a.(type) {
	case GetStarted:
		s.Screen = models.ScreenLogin

	case LoggedIn:
		user := a.User
		s.User = &user
		s.Screen = models.ScreenHome

	case ViewDetails:
		s.SelectedVendorID = a.VendorID
		s.Screen = models.ScreenDetails

	case Back:
		s.SelectedVendorID = 0
		s.Screen = models.ScreenHome

	case Navigate:
		if a.Screen != models.ScreenDetails {
			s.SelectedVendorID = 0
		}
		s.Screen = a.Screen

	case SelectLocation:
		s.Location = a.City
		s.LocationSeq++

	case LocationResolved:
		if a.Seq == s.LocationSeq {
			s.Location = a.City
		}

	case AddToCart:
		s.Cart, _ = cart.Add(s.Cart, a.Item, a.Vendor)

	case RemoveFromCart:
		s.Cart, _, _ = cart.Remove(s.Cart, a.Index)

	case UpdateQuantity:
		s.Cart, _ = cart.UpdateQuantity(s.Cart, a.Index, a.Quantity)

	case Logout:
		s.User = nil
		s.Cart = []models.CartLine{}
		s.Orders = []models.Order{}
		s.SelectedVendorID = 0
		s.Screen = models.ScreenLogin
	}
	return s
}
