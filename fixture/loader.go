// Package fixture loads and validates the static catalog document that
// stands in for a live backend.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"tent-on-rent-api/models"
)

// ErrLoadFailed is wrapped by Load when every candidate path fails. It is
// fatal to the session; the caller surfaces a retry-the-page message.
var ErrLoadFailed = errors.New("failed to load catalog from any path")

// Loader fetches the catalog fixture from an ordered list of candidate
// locations. HTTP(S) URLs are fetched with the client; anything else is
// read from the local filesystem.
type Loader struct {
	Client     *http.Client
	Candidates []string

	validate *validator.Validate
}

func NewLoader(client *http.Client, candidates []string) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		Client:     client,
		Candidates: candidates,
		validate:   validator.New(),
	}
}

// Load tries each candidate once, in order, with no delay between
// attempts; the first one that yields a valid catalog wins.
func (l *Loader) Load(ctx context.Context) (*models.Catalog, error) {
	var lastErr error
	for _, path := range l.Candidates {
		data, err := l.fetch(ctx, path)
		if err != nil {
			slog.Debug("fixture candidate failed", "path", path, "error", err)
			lastErr = err
			continue
		}

		var catalog models.Catalog
		if err := json.Unmarshal(data, &catalog); err != nil {
			lastErr = fmt.Errorf("parse %s: %w", path, err)
			continue
		}
		if err := l.checkCatalog(&catalog); err != nil {
			lastErr = fmt.Errorf("invalid catalog at %s: %w", path, err)
			continue
		}

		slog.Info("catalog loaded", "path", path, "vendors", len(catalog.TentHouses))
		return &catalog, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, lastErr)
	}
	return nil, ErrLoadFailed
}

func (l *Loader) fetch(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.Client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(path)
}

// checkCatalog enforces the ingest invariants the rest of the app leans
// on: vendor ids are unique, every vendor location is a supported city,
// and item names are unique within their vendor so (vendor id, item name)
// is a safe cart key.
func (l *Loader) checkCatalog(c *models.Catalog) error {
	if err := l.validate.Struct(c); err != nil {
		return err
	}

	supported := make(map[string]bool, len(c.AppConfig.SupportedCities))
	for _, city := range c.AppConfig.SupportedCities {
		supported[city] = true
	}

	seenIDs := make(map[uint]bool, len(c.TentHouses))
	for _, v := range c.TentHouses {
		if seenIDs[v.ID] {
			return fmt.Errorf("duplicate vendor id %d", v.ID)
		}
		seenIDs[v.ID] = true

		if !supported[v.Location] {
			return fmt.Errorf("vendor %d location %q is not a supported city", v.ID, v.Location)
		}

		seenNames := make(map[string]bool, len(v.Items))
		for _, item := range v.Items {
			if seenNames[item.Name] {
				return fmt.Errorf("vendor %d has duplicate item name %q", v.ID, item.Name)
			}
			seenNames[item.Name] = true
		}
	}
	return nil
}
