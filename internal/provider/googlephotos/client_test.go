package googlephotos

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"photoframe/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(serverURL string) *Client {
	return New(Config{
		ClientID:         "client-1",
		ClientSecret:     "secret-1",
		Scope:            "photos.readonly",
		DeviceEndpoint:   serverURL + "/device/code",
		TokenEndpoint:    serverURL + "/token",
		IdentityEndpoint: serverURL + "/userinfo",
		PhotosBaseURL:    serverURL + "/v1",
		AlbumPageSize:    50,
		MediaPageSize:    100,
		Timeout:          5 * time.Second,
	}, s.logger)
}

func (s *ClientTestSuite) TestRequestDeviceCode_MissingClientID() {
	client := New(Config{}, s.logger)

	_, err := client.RequestDeviceCode(context.Background())

	var cfgErr *domain.ConfigurationError
	s.ErrorAs(err, &cfgErr)
	s.Equal("GOOGLE_CLIENT_ID", cfgErr.Setting)
}

func (s *ClientTestSuite) TestRequestDeviceCode_IssuesBundle() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/device/code", r.URL.Path)
		s.NoError(r.ParseForm())
		s.Equal("client-1", r.PostForm.Get("client_id"))
		s.Equal("photos.readonly", r.PostForm.Get("scope"))

		json.NewEncoder(w).Encode(map[string]any{
			"device_code":      "dev-code",
			"user_code":        "ABCD-EFGH",
			"verification_url": "https://example.com/device",
			"expires_in":       1800,
			"interval":         5,
		})
	}))
	defer server.Close()

	bundle, err := s.newClient(server.URL).RequestDeviceCode(context.Background())

	s.NoError(err)
	s.Equal("dev-code", bundle.DeviceCode)
	s.Equal("ABCD-EFGH", bundle.UserCode)
	s.Equal("https://example.com/device", bundle.VerificationURL)
	s.Equal(30*time.Minute, bundle.ExpiresIn)
	s.Equal(5*time.Second, bundle.Interval)
}

func (s *ClientTestSuite) TestPollForToken_PendingThenGranted() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.NoError(r.ParseForm())
		s.Equal("dev-code", r.PostForm.Get("device_code"))
		s.Equal(deviceGrantType, r.PostForm.Get("grant_type"))

		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusPreconditionRequired)
			json.NewEncoder(w).Encode(map[string]string{"error": "authorization_pending"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok",
			"refresh_token": "ref",
			"expires_in":    3600,
		})
	}))
	defer server.Close()

	grant, err := s.newClient(server.URL).PollForToken(context.Background(), "dev-code", time.Millisecond)

	s.NoError(err)
	s.Equal("tok", grant.AccessToken)
	s.Equal("ref", grant.RefreshToken)
	s.Equal(time.Hour, grant.ExpiresIn)
	s.EqualValues(3, calls.Load(), "pending responses keep the loop polling")
}

func (s *ClientTestSuite) TestPollForToken_DenialIsTerminal() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "access_denied",
			"error_description": "the user denied the request",
		})
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).PollForToken(context.Background(), "dev-code", time.Millisecond)

	var authErr *domain.AuthorizationError
	s.ErrorAs(err, &authErr)
	s.Equal("the user denied the request", authErr.Reason)
}

func (s *ClientTestSuite) TestPollForToken_Cancellation() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionRequired)
		json.NewEncoder(w).Encode(map[string]string{"error": "authorization_pending"})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.newClient(server.URL).PollForToken(ctx, "dev-code", 5*time.Millisecond)

	s.True(domain.IsCancelled(err))
}

func (s *ClientTestSuite) TestRefreshToken_MissingSecret() {
	client := New(Config{ClientID: "client-1"}, s.logger)

	_, err := client.RefreshToken(context.Background(), "ref")

	var cfgErr *domain.ConfigurationError
	s.ErrorAs(err, &cfgErr)
	s.Equal("GOOGLE_CLIENT_SECRET", cfgErr.Setting)
}

func (s *ClientTestSuite) TestRefreshToken_ExchangesGrant() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.NoError(r.ParseForm())
		s.Equal("refresh_token", r.PostForm.Get("grant_type"))
		s.Equal("ref", r.PostForm.Get("refresh_token"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-2",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	grant, err := s.newClient(server.URL).RefreshToken(context.Background(), "ref")

	s.NoError(err)
	s.Equal("tok-2", grant.AccessToken)
	s.Empty(grant.RefreshToken)
}

func (s *ClientTestSuite) TestFetchProfile_MapsIdentity() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer tok", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]string{
			"sub":     "acct1",
			"email":   "ana@example.com",
			"name":    "Ana",
			"picture": "https://example.com/ana.jpg",
		})
	}))
	defer server.Close()

	profile, err := s.newClient(server.URL).FetchProfile(context.Background(), "tok")

	s.NoError(err)
	s.Equal("acct1", profile.ID)
	s.Equal("ana@example.com", profile.Email)
	s.Equal("Ana", profile.Name)
	s.Equal("https://example.com/ana.jpg", profile.PhotoURL)
}

func (s *ClientTestSuite) TestListAlbums_RemoteError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid credentials"},
		})
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListAlbums(context.Background(), "tok")

	var remoteErr *domain.RemoteError
	s.ErrorAs(err, &remoteErr)
	s.Equal(http.StatusUnauthorized, remoteErr.Status)
	s.Equal("invalid credentials", remoteErr.Message)
}

func (s *ClientTestSuite) TestListAlbums_MapsPage() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/albums", r.URL.Path)
		s.Equal("50", r.URL.Query().Get("pageSize"))

		json.NewEncoder(w).Encode(map[string]any{
			"albums": []map[string]string{
				{
					"id":                "albumA",
					"title":             "Holiday",
					"productUrl":        "https://example.com/albumA",
					"mediaItemsCount":   "42",
					"coverPhotoBaseUrl": "https://example.com/cover",
				},
			},
		})
	}))
	defer server.Close()

	albums, err := s.newClient(server.URL).ListAlbums(context.Background(), "tok")

	s.NoError(err)
	s.Require().Len(albums, 1)
	s.Equal("albumA", albums[0].ID)
	s.Equal("Holiday", albums[0].Title)
	s.Equal("42", albums[0].MediaItemsCount)
}

func (s *ClientTestSuite) TestListAlbumMedia_PagesSequentially() {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/mediaItems:search", r.URL.Path)

		var req mediaSearchRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("albumA", req.AlbumID)
		requests = append(requests, req.PageToken)

		if req.PageToken == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"mediaItems": []map[string]any{
					{
						"id":          "p-1",
						"filename":    "one.jpg",
						"description": "sunset",
						"baseUrl":     "https://example.com/p-1",
						"mediaMetadata": map[string]string{
							"creationTime": "2025-05-01T10:00:00Z",
						},
					},
				},
				"nextPageToken": "page-2",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"mediaItems": []map[string]any{
				{
					"id":       "p-2",
					"filename": "two.jpg",
					"baseUrl":  "https://example.com/p-2",
					"mediaMetadata": map[string]string{
						"creationTime": "not-a-timestamp",
					},
				},
			},
		})
	}))
	defer server.Close()

	photos, err := s.newClient(server.URL).ListAlbumMedia(context.Background(), "tok", "albumA")

	s.NoError(err)
	s.Equal([]string{"", "page-2"}, requests, "next page requested only after the previous token is known")
	s.Require().Len(photos, 2)

	s.Equal("p-1", photos[0].ID)
	s.Equal("one.jpg", photos[0].Title)
	s.Equal("https://example.com/p-1"+displaySizeSuffix, photos[0].URL)
	s.Require().NotNil(photos[0].Description)
	s.Equal("sunset", *photos[0].Description)
	s.Require().NotNil(photos[0].TakenAt)
	s.Equal(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), photos[0].TakenAt.UTC())

	s.Equal("p-2", photos[1].ID)
	s.Nil(photos[1].Description)
	s.Nil(photos[1].TakenAt, "unparseable capture times are dropped, not fatal")
}
