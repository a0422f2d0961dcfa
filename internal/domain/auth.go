package domain

import "time"

// AuthPhase tracks the device-authorization state machine.
type AuthPhase string

const (
	AuthIdle    AuthPhase = "idle"
	AuthCode    AuthPhase = "code"
	AuthPolling AuthPhase = "polling"
	AuthReady   AuthPhase = "ready"
	AuthError   AuthPhase = "error"
)

// DeviceCodeBundle is the provider's response to a device-code request.
// The user visits VerificationURL and enters UserCode while the device
// polls the token endpoint every Interval.
type DeviceCodeBundle struct {
	DeviceCode      string
	UserCode        string
	VerificationURL string
	ExpiresIn       time.Duration
	Interval        time.Duration
	Message         string
}

// TokenGrant is a raw, un-normalized token exchange response from the
// provider. ExpiresIn is relative; the token lifecycle manager turns it
// into a TokenRecord with an absolute expiry.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// TokenFreshnessWindow is how long before expiry a token stops being
// considered usable and must be refreshed.
const TokenFreshnessWindow = 60 * time.Second

// TokenRecord holds the credentials for one account.
type TokenRecord struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Fresh reports whether the access token is still usable at now,
// accounting for the freshness window.
func (t TokenRecord) Fresh(now time.Time) bool {
	return now.Before(t.ExpiresAt.Add(-TokenFreshnessWindow))
}
