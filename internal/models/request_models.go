package models

// UpdateProfileRequest is the body for PUT /profiles/me. Pointer fields
// distinguish "clear this value" from "leave it alone". Revision must match
// the revision the client last read or the update is rejected as a conflict.
type UpdateProfileRequest struct {
	Revision            int64            `json:"revision" binding:"required"`
	DisplayName         *string          `json:"displayName,omitempty"`
	CountryOfResidence  *string          `json:"countryOfResidence,omitempty"`
	Social              *SocialLinks     `json:"social,omitempty"`
	ProfilePicture      *ImageRef        `json:"profilePicture,omitempty"`
	CoverPhoto          *ImageRef        `json:"coverPhoto,omitempty"`
	EventsAttended      *[]EventAttended `json:"eventsAttended,omitempty"`
	AboutWorkWithJoe    *string          `json:"aboutWorkWithJoe,omitempty"`
	HopingToConnectWith *string          `json:"hopingToConnectWith,omitempty"`
}

// ListingRequest is the body for creating or updating a listing. The listing
// ID and like set are never client-supplied; they are managed server-side.
type ListingRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Website         string                 `json:"website,omitempty"`
	Headline        string                 `json:"headline,omitempty"`
	Category        string                 `json:"category" binding:"required"`
	Description     string                 `json:"description,omitempty"`
	Location        string                 `json:"location,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	Email           string                 `json:"email,omitempty"`
	Logo            ImageRef               `json:"logo,omitempty"`
	SocialAddresses ListingSocialAddresses `json:"socialAddresses,omitempty"`
	Skills          []string               `json:"skills,omitempty"`
	Services        []Service              `json:"services,omitempty"`
}

// ToggleLikeRequest is the body for POST /likes/toggle.
type ToggleLikeRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
	ListingID string `json:"listingId" binding:"required"`
}
