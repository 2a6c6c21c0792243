package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tent-on-rent-api/config"
	"tent-on-rent-api/handlers"
	"tent-on-rent-api/location"
	"tent-on-rent-api/models"
	"tent-on-rent-api/routes"
	"tent-on-rent-api/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.LoginDelay = 0
	os.Exit(m.Run())
}

func testCatalog() *models.Catalog {
	return &models.Catalog{
		AppConfig: models.AppConfig{
			AppName:         "TentOnRent",
			Currency:        "₹",
			SupportedCities: []string{"Mumbai, Maharashtra", "Pune, Maharashtra"},
			PopularCities:   []string{"Mumbai, Maharashtra"},
		},
		Categories: []models.Category{
			{Name: "Chairs", Icon: "🪑", SearchTerm: "chair"},
		},
		TentHouses: []models.Vendor{
			{
				ID:       1,
				Name:     "Shree Mandap",
				Location: "Mumbai, Maharashtra",
				Rating:   4.5,
				Items: []models.Item{
					{Name: "Chair", Price: 150},
					{Name: "Wedding Tent", Price: 15000},
				},
			},
			{
				ID:       2,
				Name:     "Pune Utsav",
				Location: "Pune, Maharashtra",
				Rating:   4.8,
				Items: []models.Item{
					{Name: "LED Lights", Price: 300},
				},
			},
		},
	}
}

// newRouter wires a fresh store and a resolver whose providers all fail,
// so detection degrades to the default city unless a test swaps them.
func newRouter(providers ...location.Provider) *gin.Engine {
	catalog := testCatalog()
	resolver := &location.Resolver{
		Providers:       providers,
		SupportedCities: catalog.AppConfig.SupportedCities,
		DefaultCity:     config.DefaultCity,
		Options:         location.DefaultGeolocateOptions,
	}
	handlers.Setup(catalog, session.NewStore(config.DefaultCity), resolver)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func newSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	token := newSession(t, r)
	w, _ := doJSON(t, r, http.MethodPost, "/api/session/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", token, gin.H{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, w.Code)
	return token
}

func TestSessionBootstrap(t *testing.T) {
	r := newRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	sess := body["session"].(map[string]any)
	assert.Equal(t, "splash", sess["currentScreen"])
	assert.Equal(t, "Mumbai, Maharashtra", sess["currentLocation"])
	assert.EqualValues(t, 0, body["cart_count"])
}

func TestSessionTokenRequired(t *testing.T) {
	r := newRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/api/vendors", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/vendors", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFlow(t *testing.T) {
	r := newRouter()
	token := newSession(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/session/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", body["screen"])

	w, body = doJSON(t, r, http.MethodPost, "/api/auth/login", token, gin.H{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged in successfully!", body["message"])
	assert.Equal(t, "home", body["screen"])

	user := body["user"].(map[string]any)
	assert.True(t, strings.HasPrefix(user["uid"].(string), "demo-user-"))
	assert.Equal(t, "9876543210", user["mobile"])
}

func TestSkipLogin(t *testing.T) {
	r := newRouter()
	token := newSession(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]any)
	assert.NotContains(t, user, "mobile")
}

func TestListVendorsFiltersByLocationAndTerm(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodGet, "/api/vendors", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	w, body = doJSON(t, r, http.MethodGet, "/api/vendors?search=chair", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	w, body = doJSON(t, r, http.MethodGet, "/api/vendors?search=led", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["count"])

	// Switching city changes the visible set.
	w, _ = doJSON(t, r, http.MethodPut, "/api/location", token, gin.H{"city": "Pune, Maharashtra"})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(t, r, http.MethodGet, "/api/vendors?search=led", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
}

func TestViewVendorDetails(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/vendors/1/view", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "details", body["screen"])

	w, body = doJSON(t, r, http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess := body["session"].(map[string]any)
	assert.EqualValues(t, 1, sess["selectedTentHouseId"])

	w, body = doJSON(t, r, http.MethodPost, "/api/session/back", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", body["screen"])
}

func TestViewVendorNotFound(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/vendors/99/view", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tent house not found", body["error"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/vendors/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 1, "item_name": "Chair"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chair added to cart", body["message"])

	w, body = doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 1, "item_name": "Chair"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chair quantity updated in cart", body["message"])
	assert.EqualValues(t, 1, body["count"])

	// price 150 × quantity 2
	w, body = doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 300, body["total"])

	w, body = doJSON(t, r, http.MethodPut, "/api/cart/items/0", token, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 450, body["total"])

	w, body = doJSON(t, r, http.MethodDelete, "/api/cart/items/0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chair removed from cart", body["message"])
	assert.EqualValues(t, 0, body["count"])
}

func TestCartRejectsBadInput(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 99, "item_name": "Chair"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 1, "item_name": "Throne"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 1, "item_name": "Chair"})

	w, _ = doJSON(t, r, http.MethodPut, "/api/cart/items/0", token, gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code) // binding required rejects zero

	w, _ = doJSON(t, r, http.MethodPut, "/api/cart/items/0", token, gin.H{"quantity": -2})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/cart/items/9", token, gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/cart/items/9", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Through all of that the cart must be intact.
	w, body := doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
	assert.EqualValues(t, 150, body["total"])
}

func TestDetectLocationDegradesToDefault(t *testing.T) {
	r := newRouter() // no providers: everything fails
	token := login(t, r)

	w, _ := doJSON(t, r, http.MethodPut, "/api/location", token, gin.H{"city": "Pune, Maharashtra"})
	require.Equal(t, http.StatusOK, w.Code)

	// Geolocation denied (no coordinates posted) → default city, no error.
	w, body := doJSON(t, r, http.MethodPost, "/api/location/detect", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mumbai, Maharashtra", body["location"])
}

type stubProvider struct {
	result string
}

func (stubProvider) Name() string { return "stub" }

func (p stubProvider) ReverseGeocode(ctx context.Context, _ location.Coordinates) (string, error) {
	return p.result, nil
}

func TestDetectLocationNormalizes(t *testing.T) {
	r := newRouter(stubProvider{result: "Thane, Maharashtra"})
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/location/detect", token,
		gin.H{"latitude": 19.2, "longitude": 72.97})
	require.Equal(t, http.StatusOK, w.Code)
	// "Thane" is not in the supported list; the region match wins.
	assert.Equal(t, "Mumbai, Maharashtra", body["location"])
	assert.Equal(t, "Mumbai, Maharashtra", body["resolved"])
}

func TestListCities(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodGet, "/api/locations?search=pune", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := body["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Pune, Maharashtra", results[0])
}

func TestNavigateAndOrders(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/session/navigate", token, gin.H{"screen": "orders"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "orders", body["screen"])

	w, body = doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["count"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/session/navigate", token, gin.H{"screen": "checkout"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Details is entered through the vendor view, not direct navigation.
	w, _ = doJSON(t, r, http.MethodPost, "/api/session/navigate", token, gin.H{"screen": "details"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	r := newRouter()
	token := login(t, r)

	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/items", token,
		gin.H{"tent_house_id": 1, "item_name": "Chair"})

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", body["message"])
	assert.Equal(t, "login", body["screen"])

	w, body = doJSON(t, r, http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess := body["session"].(map[string]any)
	assert.Equal(t, "login", sess["currentScreen"])
	assert.NotContains(t, sess, "currentUser")
	assert.EqualValues(t, 0, body["cart_count"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStateMachineInfo(t *testing.T) {
	r := newRouter()

	w, body := doJSON(t, r, http.MethodGet, "/api/state-machine", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	transitions := body["state_machine"].([]any)
	assert.NotEmpty(t, transitions)
}
