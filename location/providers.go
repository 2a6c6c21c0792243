package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BigDataCloud is the primary reverse-geocoding provider. Keyless and
// CORS-friendly, which is why the demo prefers it.
type BigDataCloud struct {
	Client  *http.Client
	BaseURL string
}

func (b *BigDataCloud) Name() string { return "bigdatacloud" }

type bigDataCloudResponse struct {
	City                         string `json:"city"`
	Locality                     string `json:"locality"`
	PrincipalSubdivision         string `json:"principalSubdivision"`
	PrincipalSubdivisionLocality string `json:"principalSubdivisionLocality"`
	LocalityInfo                 struct {
		Administrative []struct {
			Name string `json:"name"`
		} `json:"administrative"`
	} `json:"localityInfo"`
}

func (b *BigDataCloud) ReverseGeocode(ctx context.Context, coords Coordinates) (string, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(coords.Latitude))
	query.Set("longitude", formatCoord(coords.Longitude))
	query.Set("localityLanguage", "en")

	var data bigDataCloudResponse
	if err := getJSON(ctx, b.Client, b.BaseURL+"?"+query.Encode(), &data); err != nil {
		return "", err
	}

	city := firstNonEmpty(data.City, data.Locality, data.PrincipalSubdivisionLocality)
	if city == "" && len(data.LocalityInfo.Administrative) > 2 {
		city = data.LocalityInfo.Administrative[2].Name
	}
	state := data.PrincipalSubdivision
	if state == "" && len(data.LocalityInfo.Administrative) > 1 {
		state = data.LocalityInfo.Administrative[1].Name
	}
	if city == "" || state == "" {
		return "", fmt.Errorf("no usable city/state in response")
	}
	return city + ", " + state, nil
}

// Nominatim is the OpenStreetMap fallback provider.
type Nominatim struct {
	Client  *http.Client
	BaseURL string
}

func (n *Nominatim) Name() string { return "nominatim" }

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		Suburb  string `json:"suburb"`
		State   string `json:"state"`
		Region  string `json:"region"`
	} `json:"address"`
}

func (n *Nominatim) ReverseGeocode(ctx context.Context, coords Coordinates) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("zoom", "10")
	query.Set("lat", formatCoord(coords.Latitude))
	query.Set("lon", formatCoord(coords.Longitude))

	var data nominatimResponse
	if err := getJSON(ctx, n.Client, n.BaseURL+"?"+query.Encode(), &data); err != nil {
		return "", err
	}

	addr := data.Address
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Hamlet, addr.Suburb)
	state := firstNonEmpty(addr.State, addr.Region)
	if city == "" || state == "" {
		return "", fmt.Errorf("no usable city/state in response")
	}
	return city + ", " + state, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
