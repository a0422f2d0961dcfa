package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"photoframe/internal/domain"
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// Conditions is the current weather at the configured location.
type Conditions struct {
	Temperature float64
	Description string
	Icon        string
	City        string
	Country     string
	UpdatedAt   time.Time
}

type apiResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

type Config struct {
	Endpoint string
	APIKey   string
	Units    string
	Timeout  time.Duration
}

// Client fetches current conditions from OpenWeather.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	units      string
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		logger:     logger.With("component", "weather"),
		now:        time.Now,
	}
}

// FetchByCity fetches conditions by city name.
func (c *Client) FetchByCity(ctx context.Context, city string) (*Conditions, error) {
	return c.fetch(ctx, url.Values{"q": {city}})
}

// FetchByCoords fetches conditions by latitude/longitude.
func (c *Client) FetchByCoords(ctx context.Context, lat, lon float64) (*Conditions, error) {
	return c.fetch(ctx, url.Values{
		"lat": {fmt.Sprintf("%f", lat)},
		"lon": {fmt.Sprintf("%f", lon)},
	})
}

func (c *Client) fetch(ctx context.Context, query url.Values) (*Conditions, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigurationError{Setting: "weather.api_key"}
	}

	query.Set("units", c.units)
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Message: resp.Status}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	conditions := &Conditions{
		Temperature: body.Main.Temp,
		City:        body.Name,
		Country:     body.Sys.Country,
		UpdatedAt:   c.now(),
	}
	if len(body.Weather) > 0 {
		conditions.Description = body.Weather[0].Description
		conditions.Icon = body.Weather[0].Icon
	} else {
		conditions.Description = "Unknown"
		conditions.Icon = "01d"
	}
	return conditions, nil
}
