package domain

import "time"

// SourceKind identifies where a photo feed came from.
type SourceKind string

const (
	SourceLocal SourceKind = "local"
	SourceCloud SourceKind = "cloud"
)

// PhotoItem is a single entry in a photo feed. Items are immutable once
// produced; feeds are replaced as a whole, never patched.
type PhotoItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	URL         string     `json:"url"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// PhotoSource describes a feed's provenance for display purposes only.
type PhotoSource struct {
	Kind        SourceKind `json:"kind"`
	DisplayName string     `json:"display_name"`
	LastSynced  *time.Time `json:"last_synced,omitempty"`
}

// AlbumSummary is one album as reported by the photo provider.
type AlbumSummary struct {
	ID                string
	Title             string
	ProductURL        string
	MediaItemsCount   string
	CoverPhotoBaseURL string
}

// AlbumSelection is the set of albums chosen for syncing. Saving a
// selection replaces the stored one wholesale.
type AlbumSelection struct {
	AccountID string   `json:"account_id"`
	AlbumIDs  []string `json:"album_ids"`
}

// AccountProfile identifies the linked cloud account.
type AccountProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// DisplayName picks the best human-readable label for the account.
func (p AccountProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Email != "" {
		return p.Email
	}
	return "Cloud Photos"
}
