package config

import (
	"os"
	"time"
)

// JWTSecret used to sign session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "tent_on_rent_demo_secret_2024"))

// DefaultCity is the location every session starts with and the value all
// location-resolution failure paths degrade to.
const DefaultCity = "Mumbai, Maharashtra"

// LoginDelay simulates the authentication round trip of the demo login.
var LoginDelay = 1 * time.Second

// Reverse-geocoding providers, tried in order. Neither requires an API key.
var (
	BigDataCloudURL = getEnv("BIGDATACLOUD_URL", "https://api.bigdatacloud.net/data/reverse-geocode-client")
	NominatimURL    = getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/reverse")
)

// GeocodeTimeout bounds each reverse-geocode provider request.
var GeocodeTimeout = 10 * time.Second

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FixtureCandidates returns the ordered list of locations the catalog
// fixture is fetched from; first success wins. FIXTURE_URL, when set, takes
// priority. BASE_PATH mirrors the deployment sub-path fallback the demo
// needs when hosted under a project page.
func FixtureCandidates() []string {
	var candidates []string
	if url := os.Getenv("FIXTURE_URL"); url != "" {
		candidates = append(candidates, url)
	}
	if base := os.Getenv("BASE_PATH"); base != "" {
		candidates = append(candidates, base+"/mockData.json")
	}
	candidates = append(candidates,
		"/TentOnRent/mockData.json",
		"/mockData.json",
		"./mockData.json",
	)
	return candidates
}
