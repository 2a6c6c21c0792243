package models

// Screen identifies which view of the demo the session is on.
type Screen string

const (
	ScreenSplash  Screen = "splash"
	ScreenLogin   Screen = "login"
	ScreenHome    Screen = "home"
	ScreenDetails Screen = "details"
	ScreenCart    Screen = "cart"
	ScreenProfile Screen = "profile"
	ScreenOrders  Screen = "orders"
)

// User is the demo authentication stub: a generated uid plus the optional
// mobile number entered on the login screen. There are no credentials.
type User struct {
	UID    string `json:"uid"`
	Mobile string `json:"mobile,omitempty"`
}

// Session is the whole per-visitor state tree. It lives in memory for the
// lifetime of the session token and is reset to its initial values on
// logout.
type Session struct {
	Screen           Screen     `json:"currentScreen"`
	User             *User      `json:"currentUser,omitempty"`
	Location         string     `json:"currentLocation"`
	SelectedVendorID uint       `json:"selectedTentHouseId,omitempty"`
	Cart             []CartLine `json:"cart"`
	Orders           []Order    `json:"orders"`

	// LocationSeq is bumped every time a location change is issued; a
	// resolved current-location result carrying a stale sequence is
	// discarded instead of overwriting a newer selection.
	LocationSeq uint64 `json:"-"`
}
