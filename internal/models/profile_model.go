package models

import "time"

// ImageRef points at an uploaded image in the storage bucket.
// Path is the object path inside the bucket; URL is publicly servable.
type ImageRef struct {
	URL  string `json:"url" firestore:"url"`
	Path string `json:"path,omitempty" firestore:"path,omitempty"`
}

// SocialLinks are the profile-level social addresses.
type SocialLinks struct {
	Facebook string `json:"facebook,omitempty" firestore:"facebook,omitempty"`
	Website  string `json:"website,omitempty" firestore:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
}

// EventAttended is a single workshop/retreat entry on a profile.
type EventAttended struct {
	Name string `json:"name" firestore:"name"`
	Date string `json:"date,omitempty" firestore:"date,omitempty"`
}

// ListingSocialAddresses are the per-listing social addresses. Every value
// here is searchable in the directory.
type ListingSocialAddresses struct {
	Facebook  string `json:"facebook,omitempty" firestore:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" firestore:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty" firestore:"youtube,omitempty"`
	Website   string `json:"website,omitempty" firestore:"website,omitempty"`
}

// Service is a named offering within a listing.
type Service struct {
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// Listing is a business/service entry embedded in a Profile and shown in the
// directory. Listings carry a stable generated ID so likes and edits address
// them by identity rather than by array position.
type Listing struct {
	ID              string                 `json:"id" firestore:"id"`
	Name            string                 `json:"name" firestore:"name"` // required for the listing to be searchable
	Website         string                 `json:"website,omitempty" firestore:"website,omitempty"`
	Headline        string                 `json:"headline,omitempty" firestore:"headline,omitempty"`
	Category        string                 `json:"category,omitempty" firestore:"category,omitempty"`
	Description     string                 `json:"description,omitempty" firestore:"description,omitempty"`
	Location        string                 `json:"location,omitempty" firestore:"location,omitempty"`
	Phone           string                 `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email           string                 `json:"email,omitempty" firestore:"email,omitempty"`
	Logo            ImageRef               `json:"logo,omitempty" firestore:"logo,omitempty"`
	SocialAddresses ListingSocialAddresses `json:"socialAddresses,omitempty" firestore:"socialAddresses,omitempty"`
	Skills          []string               `json:"skills,omitempty" firestore:"skills,omitempty"`
	Services        []Service              `json:"services,omitempty" firestore:"services,omitempty"`
	// Likes holds the UIDs of members who liked this listing. The mirrored
	// representation lives in the userLikes collection; see models.UserLikes.
	Likes []string `json:"likes,omitempty" firestore:"likes,omitempty"`
}

// IsValid reports whether the listing may appear in directory results.
func (l *Listing) IsValid() bool {
	return l.Name != ""
}

// Profile is the top-level per-member document. The document ID is the
// member's Firebase Auth UID; one profile per user, mutated only by its owner.
type Profile struct {
	ID                  string          `json:"id" firestore:"-"` // Firebase Auth UID, document ID
	DisplayName         string          `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	CountryOfResidence  string          `json:"countryOfResidence,omitempty" firestore:"countryOfResidence,omitempty"`
	Social              SocialLinks     `json:"social,omitempty" firestore:"social,omitempty"`
	ProfilePicture      ImageRef        `json:"profilePicture,omitempty" firestore:"profilePicture,omitempty"`
	CoverPhoto          ImageRef        `json:"coverPhoto,omitempty" firestore:"coverPhoto,omitempty"`
	EventsAttended      []EventAttended `json:"eventsAttended,omitempty" firestore:"eventsAttended,omitempty"`
	AboutWorkWithJoe    string          `json:"aboutWorkWithJoe,omitempty" firestore:"aboutWorkWithJoe,omitempty"`
	HopingToConnectWith string          `json:"hopingToConnectWith,omitempty" firestore:"hopingToConnectWith,omitempty"`
	Businesses          []Listing       `json:"businesses" firestore:"businesses"`
	// Revision is a monotonic counter bumped on every write to the document.
	// Updates must present the revision they read; stale writes are rejected
	// with a conflict so last-write-wins clobbering cannot happen silently.
	Revision      int64     `json:"revision" firestore:"revision"`
	IsTestProfile bool      `json:"isTestProfile,omitempty" firestore:"isTestProfile,omitempty"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// ValidListings returns the subset of Businesses eligible for the directory.
func (p *Profile) ValidListings() []Listing {
	var out []Listing
	for _, l := range p.Businesses {
		if l.IsValid() {
			out = append(out, l)
		}
	}
	return out
}

// FindListing returns the listing with the given ID, or nil.
func (p *Profile) FindListing(listingID string) *Listing {
	for i := range p.Businesses {
		if p.Businesses[i].ID == listingID {
			return &p.Businesses[i]
		}
	}
	return nil
}

// DefaultProfile is the skeleton written lazily on a member's first
// authenticated profile fetch.
func DefaultProfile(uid, displayName string) *Profile {
	return &Profile{
		ID:          uid,
		DisplayName: displayName,
		Businesses:  []Listing{},
		Revision:    1,
	}
}
