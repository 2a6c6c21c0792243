package statemachine

import (
	"tent-on-rent-api/models"
)

// Transition describes one edge of the screen navigation graph and the
// user action that triggers it.
type Transition struct {
	From    models.Screen
	To      models.Screen
	Trigger string
}

// validTransitions is the authoritative navigation graph. Navigation is
// never rejected at runtime — every trigger unconditionally sets its
// target screen — but the graph documents which triggers exist from where.
var validTransitions = []Transition{
	// Splash → login via the get-started button
	{From: models.ScreenSplash, To: models.ScreenLogin, Trigger: "get_started"},
	// Login (or skip-login) lands on home
	{From: models.ScreenLogin, To: models.ScreenHome, Trigger: "login"},
	// Home fans out to every other screen
	{From: models.ScreenHome, To: models.ScreenDetails, Trigger: "view_details"},
	{From: models.ScreenHome, To: models.ScreenCart, Trigger: "view_cart"},
	{From: models.ScreenHome, To: models.ScreenProfile, Trigger: "view_profile"},
	{From: models.ScreenHome, To: models.ScreenOrders, Trigger: "view_orders"},
	// Details keeps its own cart shortcut
	{From: models.ScreenDetails, To: models.ScreenCart, Trigger: "view_cart"},
	// Back from any secondary screen returns home
	{From: models.ScreenDetails, To: models.ScreenHome, Trigger: "back"},
	{From: models.ScreenCart, To: models.ScreenHome, Trigger: "back"},
	{From: models.ScreenProfile, To: models.ScreenHome, Trigger: "back"},
	{From: models.ScreenOrders, To: models.ScreenHome, Trigger: "back"},
	// Logout resets the session and returns to login
	{From: models.ScreenHome, To: models.ScreenLogin, Trigger: "logout"},
}

// knownScreens is derived from the graph so an unknown screen string can be
// caught at the API boundary.
var knownScreens = func() map[models.Screen]bool {
	m := make(map[models.Screen]bool)
	for _, t := range validTransitions {
		m[t.From] = true
		m[t.To] = true
	}
	return m
}()

// KnownScreen reports whether s appears anywhere in the navigation graph.
func KnownScreen(s models.Screen) bool {
	return knownScreens[s]
}

// ValidTransitionsFrom returns all screens reachable from a given screen.
func ValidTransitionsFrom(screen models.Screen) []models.Screen {
	var nexts []models.Screen
	seen := map[models.Screen]bool{}
	for _, t := range validTransitions {
		if t.From == screen && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// GetAllTransitions returns the full navigation graph for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
