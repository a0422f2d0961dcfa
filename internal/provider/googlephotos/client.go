package googlephotos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"photoframe/internal/domain"
)

// displaySizeSuffix selects a frame-sized rendition of a media item's
// base URL.
const displaySizeSuffix = "=w3840-h2160"

const deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"

// Config holds Google Photos client configuration.
type Config struct {
	ClientID         string
	ClientSecret     string
	Scope            string
	DeviceEndpoint   string
	TokenEndpoint    string
	IdentityEndpoint string
	PhotosBaseURL    string
	AlbumPageSize    int
	MediaPageSize    int
	Timeout          time.Duration
}

// Client talks to the Google OAuth device-flow and Photos Library
// endpoints.
type Client struct {
	httpClient       *http.Client
	clientID         string
	clientSecret     string
	scope            string
	deviceEndpoint   string
	tokenEndpoint    string
	identityEndpoint string
	photosBaseURL    string
	albumPageSize    int
	mediaPageSize    int
	logger           *slog.Logger
}

// New creates a new Google Photos client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		clientID:         cfg.ClientID,
		clientSecret:     cfg.ClientSecret,
		scope:            cfg.Scope,
		deviceEndpoint:   cfg.DeviceEndpoint,
		tokenEndpoint:    cfg.TokenEndpoint,
		identityEndpoint: cfg.IdentityEndpoint,
		photosBaseURL:    cfg.PhotosBaseURL,
		albumPageSize:    cfg.AlbumPageSize,
		mediaPageSize:    cfg.MediaPageSize,
		logger:           logger.With("provider", "googlephotos"),
	}
}

// RequestDeviceCode starts a device authorization attempt.
func (c *Client) RequestDeviceCode(ctx context.Context) (*domain.DeviceCodeBundle, error) {
	if c.clientID == "" {
		return nil, &domain.ConfigurationError{Setting: "GOOGLE_CLIENT_ID"}
	}

	form := url.Values{
		"client_id": {c.clientID},
		"scope":     {c.scope},
	}

	resp, err := c.postForm(ctx, c.deviceEndpoint, form)
	if err != nil {
		return nil, fmt.Errorf("request device code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readAPIError(resp)
	}

	var body deviceCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode device code response: %w", err)
	}

	c.logger.Info("device code issued", "user_code", body.UserCode, "verification_url", body.VerificationURL)

	return &domain.DeviceCodeBundle{
		DeviceCode:      body.DeviceCode,
		UserCode:        body.UserCode,
		VerificationURL: body.VerificationURL,
		ExpiresIn:       time.Duration(body.ExpiresIn) * time.Second,
		Interval:        time.Duration(body.Interval) * time.Second,
		Message:         body.Message,
	}, nil
}

// PollForToken polls the token endpoint until the user approves the
// device, the provider rejects the attempt, or ctx is cancelled. The
// rate limiter guarantees the loop never runs faster than the
// server-specified interval; "authorization pending" is the expected
// steady state, not an error.
func (c *Client) PollForToken(ctx context.Context, deviceCode string, interval time.Duration) (*domain.TokenGrant, error) {
	if c.clientID == "" {
		return nil, &domain.ConfigurationError{Setting: "GOOGLE_CLIENT_ID"}
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		grant, pending, err := c.tryDeviceToken(ctx, deviceCode)
		if err != nil {
			return nil, err
		}
		if pending {
			c.logger.Debug("authorization pending", "interval", interval)
			continue
		}
		return grant, nil
	}
}

func (c *Client) tryDeviceToken(ctx context.Context, deviceCode string) (*domain.TokenGrant, bool, error) {
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"device_code":   {deviceCode},
		"grant_type":    {deviceGrantType},
	}

	resp, err := c.postForm(ctx, c.tokenEndpoint, form)
	if err != nil {
		return nil, false, fmt.Errorf("poll token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		grant, err := decodeTokenGrant(resp.Body)
		return grant, false, err
	}

	var body tokenErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, &domain.AuthorizationError{Reason: resp.Status}
	}
	if body.Error == "authorization_pending" {
		return nil, true, nil
	}

	reason := body.ErrorDescription
	if reason == "" {
		reason = body.Error
	}
	return nil, false, &domain.AuthorizationError{Reason: reason}
}

// RefreshToken exchanges a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenGrant, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, &domain.ConfigurationError{Setting: "GOOGLE_CLIENT_SECRET"}
	}

	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	resp, err := c.postForm(ctx, c.tokenEndpoint, form)
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readAPIError(resp)
	}

	return decodeTokenGrant(resp.Body)
}

// FetchProfile fetches the account identity for the given access token.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*domain.AccountProfile, error) {
	resp, err := c.doGet(ctx, c.identityEndpoint, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readAPIError(resp)
	}

	var body userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &domain.AccountProfile{
		ID:       body.Sub,
		Email:    body.Email,
		Name:     body.Name,
		PhotoURL: body.Picture,
	}, nil
}

// ListAlbums fetches a single page of the account's albums.
func (c *Client) ListAlbums(ctx context.Context, accessToken string) ([]domain.AlbumSummary, error) {
	endpoint := fmt.Sprintf("%s/albums?pageSize=%d", c.photosBaseURL, c.albumPageSize)

	resp, err := c.doGet(ctx, endpoint, accessToken)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readAPIError(resp)
	}

	var body albumsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode albums: %w", err)
	}

	albums := make([]domain.AlbumSummary, 0, len(body.Albums))
	for _, a := range body.Albums {
		albums = append(albums, domain.AlbumSummary{
			ID:                a.ID,
			Title:             a.Title,
			ProductURL:        a.ProductURL,
			MediaItemsCount:   a.MediaItemsCount,
			CoverPhotoBaseURL: a.CoverPhotoBaseURL,
		})
	}
	return albums, nil
}

// ListAlbumMedia pages through the media-search endpoint for one album
// and returns every item mapped to a PhotoItem. Page N+1 is requested
// only after page N's continuation token is known.
func (c *Client) ListAlbumMedia(ctx context.Context, accessToken, albumID string) ([]domain.PhotoItem, error) {
	var items []domain.PhotoItem
	pageToken := ""

	for {
		page, err := c.searchMediaPage(ctx, accessToken, albumID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("album %s: %w", albumID, err)
		}

		items = append(items, c.transform(page.MediaItems)...)

		c.logger.Debug("fetched media page",
			"album_id", albumID,
			"items", len(page.MediaItems),
			"total", len(items),
		)

		if page.NextPageToken == "" {
			return items, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) searchMediaPage(ctx context.Context, accessToken, albumID, pageToken string) (*mediaSearchResponse, error) {
	payload, err := json.Marshal(mediaSearchRequest{
		AlbumID:   albumID,
		PageSize:  c.mediaPageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	endpoint := c.photosBaseURL + "/mediaItems:search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.readAPIError(resp)
	}

	var body mediaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &body, nil
}

func (c *Client) transform(items []mediaItem) []domain.PhotoItem {
	photos := make([]domain.PhotoItem, 0, len(items))

	for _, item := range items {
		photo := domain.PhotoItem{
			ID:    item.ID,
			Title: item.Filename,
			URL:   item.BaseURL + displaySizeSuffix,
		}
		if item.Description != "" {
			desc := item.Description
			photo.Description = &desc
		}
		if item.MediaMetadata.CreationTime != "" {
			takenAt, err := time.Parse(time.RFC3339, item.MediaMetadata.CreationTime)
			if err != nil {
				c.logger.Warn("failed to parse creation time",
					"media_item_id", item.ID,
					"creation_time", item.MediaMetadata.CreationTime,
				)
			} else {
				photo.TakenAt = &takenAt
			}
		}
		photos = append(photos, photo)
	}

	return photos
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.httpClient.Do(req)
}

func (c *Client) doGet(ctx context.Context, endpoint, accessToken string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return c.httpClient.Do(req)
}

// readAPIError turns a non-success response into a RemoteError, pulling
// the message out of the API error envelope when one is present.
func (c *Client) readAPIError(resp *http.Response) error {
	message := resp.Status

	raw, err := io.ReadAll(resp.Body)
	if err == nil {
		var body apiErrorResponse
		if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
			message = body.Error.Message
		}
	}

	return &domain.RemoteError{Status: resp.StatusCode, Message: message}
}

func decodeTokenGrant(r io.Reader) (*domain.TokenGrant, error) {
	var body tokenResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	return &domain.TokenGrant{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresIn:    time.Duration(body.ExpiresIn) * time.Second,
	}, nil
}
