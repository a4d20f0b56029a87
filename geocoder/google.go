// Package geocoder resolves free-text addresses into bootcamp locations.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/semka95/devcamper/domain"
)

const (
	googleGeocodeURL   = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultHTTPTimeout = 8 * time.Second
)

// Config stores geocoding provider configuration
type Config struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// GoogleGeocoder implements domain.Geocoder using Google Maps Geocoding API
type GoogleGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewGoogleGeocoder creates geocoder, empty base URL and nil client fall back to defaults
func NewGoogleGeocoder(cfg Config, httpClient *http.Client, tracer trace.Tracer) *GoogleGeocoder {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = googleGeocodeURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleGeocoder{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		tracer:     tracer,
	}
}

type googleAddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type googleGeocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress  string                   `json:"formatted_address"`
		AddressComponents []googleAddressComponent `json:"address_components"`
		Geometry          struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode converts an address to a GeoJSON point with address details
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	ctx, span := g.tracer.Start(
		ctx,
		"geocoder Geocode",
		trace.WithAttributes(
			attribute.String("address", address)),
	)
	defer span.End()

	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("address is required: %w", domain.ErrBadParamInput)
	}

	resp, err := g.doGeocodeRequest(ctx, url.Values{"address": []string{trimmed}})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if resp.Status == "ZERO_RESULTS" || len(resp.Results) == 0 {
		err = fmt.Errorf("no results for address %q: %w", trimmed, domain.ErrBadParamInput)
		span.RecordError(err)
		return nil, err
	}

	result := resp.Results[0]
	return &domain.Location{
		Type:             "Point",
		Coordinates:      []float64{result.Geometry.Location.Lng, result.Geometry.Location.Lat},
		FormattedAddress: result.FormattedAddress,
		Street:           buildStreet(result.AddressComponents),
		City:             component(result.AddressComponents, "locality", "administrative_area_level_2"),
		State:            shortComponent(result.AddressComponents, "administrative_area_level_1"),
		Zipcode:          component(result.AddressComponents, "postal_code"),
		Country:          shortComponent(result.AddressComponents, "country"),
	}, nil
}

func (g *GoogleGeocoder) doGeocodeRequest(ctx context.Context, params url.Values) (*googleGeocodeResponse, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("geocoder api key is required: %w", domain.ErrInternalServerError)
	}

	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w: %s", domain.ErrInternalServerError, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocode request returned status %d: %w", resp.StatusCode, domain.ErrInternalServerError)
	}

	var payload googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("geocode request failed: %s %s: %w", payload.Status, payload.ErrorMessage, domain.ErrInternalServerError)
	}

	return &payload, nil
}

func component(components []googleAddressComponent, primary string, fallback ...string) string {
	for _, t := range append([]string{primary}, fallback...) {
		for _, comp := range components {
			if containsType(comp.Types, t) {
				return comp.LongName
			}
		}
	}
	return ""
}

func shortComponent(components []googleAddressComponent, typ string) string {
	for _, comp := range components {
		if containsType(comp.Types, typ) {
			return comp.ShortName
		}
	}
	return ""
}

func buildStreet(components []googleAddressComponent) string {
	streetNumber := component(components, "street_number")
	route := component(components, "route")
	if streetNumber != "" && route != "" {
		return streetNumber + " " + route
	}
	if route != "" {
		return route
	}
	return streetNumber
}

func containsType(types []string, target string) bool {
	for _, t := range types {
		if t == target {
			return true
		}
	}
	return false
}
