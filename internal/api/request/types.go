package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	FullName  string `json:"fullName"`
	UserID    string `json:"userId"`
	Ward      string `json:"ward"`
	SubCounty string `json:"subCounty,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	UserID string `json:"userId"`
}

// UpgradeRequest is the request body for buying a membership tier
type UpgradeRequest struct {
	Tier string `json:"tier"`
}

// DonateRequest is the request body for a donation
type DonateRequest struct {
	Name   string `json:"name,omitempty"`
	Amount int    `json:"amount"`
}

// PostHighlightRequest is the request body for posting a highlight
type PostHighlightRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Category     string `json:"category"`
}
