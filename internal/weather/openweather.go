package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the OpenWeather current-conditions endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherClient fetches live conditions from the OpenWeather API for a
// fixed location.
type OpenWeatherClient struct {
	apiKey  string
	lat     float64
	lon     float64
	baseURL string
	client  *http.Client
}

// NewOpenWeatherClient builds a client for the given API key and
// coordinates. The timeout bounds the whole HTTP exchange.
func NewOpenWeatherClient(apiKey string, lat, lon float64, timeout time.Duration) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (c *OpenWeatherClient) WithBaseURL(u string) *OpenWeatherClient {
	c.baseURL = u
	return c
}

// openWeatherResponse mirrors the subset of the API payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *OpenWeatherClient) Current(ctx context.Context) (Conditions, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Conditions{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return Conditions{}, fmt.Errorf("weather response has no conditions")
	}

	return Conditions{
		Temperature: int(math.Round(payload.Main.Temp)),
		Description: payload.Weather[0].Description,
	}, nil
}
