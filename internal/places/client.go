// Package places queries the Kakao Local category search for amenities near a point.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the Kakao REST API host.
const DefaultBaseURL = "https://dapi.kakao.com"

// DefaultRadius is the search radius in metres used when none is given.
const DefaultRadius = 1000

const categoryPath = "/v2/local/search/category.json"

// Place is one search hit, with coordinates already parsed.
type Place struct {
	Name string
	Lat  float64
	Lng  float64
}

type document struct {
	PlaceName string `json:"place_name"`
	X         string `json:"x"`
	Y         string `json:"y"`
}

type searchResponse struct {
	Documents []document `json:"documents"`
}

// Client provides access to the Kakao Local API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for baseURL authenticated with apiKey.
// A nil httpClient means http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// SearchNearby returns places of categoryCode within radius metres of (lat, lng).
// Any non-200 answer yields an empty result and no error, whatever the cause.
func (c *Client) SearchNearby(ctx context.Context, lat, lng float64, categoryCode string, radius int) ([]Place, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}

	params := url.Values{}
	params.Set("category_group_code", categoryCode)
	params.Set("x", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+categoryPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("category", categoryCode).
			Msg("places search returned non-200, treating as no results")
		return []Place{}, nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places: failed to decode response: %w", err)
	}

	places := make([]Place, 0, len(body.Documents))
	for _, d := range body.Documents {
		p, err := d.toPlace()
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	return places, nil
}

func (d document) toPlace() (Place, error) {
	lng, errX := strconv.ParseFloat(d.X, 64)
	lat, errY := strconv.ParseFloat(d.Y, 64)
	if err := errors.Join(errX, errY); err != nil {
		return Place{}, fmt.Errorf("places: invalid coordinates for %q: %w", d.PlaceName, err)
	}
	return Place{Name: d.PlaceName, Lat: lat, Lng: lng}, nil
}
