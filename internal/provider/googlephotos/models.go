package googlephotos

// deviceCodeResponse is the device-code endpoint response.
type deviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
	Message         string `json:"message"`
}

// tokenResponse is a successful token endpoint response, for both the
// device-code grant and the refresh-token grant.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

// tokenErrorResponse is the token endpoint's error body. The error code
// "authorization_pending" is the expected steady state while polling.
type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// apiErrorResponse is the Photos API error envelope.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type userInfoResponse struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type albumsResponse struct {
	Albums []albumSummary `json:"albums"`
}

type albumSummary struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	ProductURL        string `json:"productUrl"`
	MediaItemsCount   string `json:"mediaItemsCount"`
	CoverPhotoBaseURL string `json:"coverPhotoBaseUrl"`
}

type mediaSearchRequest struct {
	AlbumID   string `json:"albumId"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

type mediaSearchResponse struct {
	MediaItems    []mediaItem `json:"mediaItems"`
	NextPageToken string      `json:"nextPageToken"`
}

type mediaItem struct {
	ID            string `json:"id"`
	BaseURL       string `json:"baseUrl"`
	Filename      string `json:"filename"`
	Description   string `json:"description"`
	MediaMetadata struct {
		CreationTime string `json:"creationTime"`
	} `json:"mediaMetadata"`
}
