package models

// BusinessCategories is the fixed category set a listing may belong to.
// Directory category filtering compares against these values exactly
// (case-sensitive).
var BusinessCategories = []string{
	"Technology",
	"Healthcare",
	"Education",
	"Finance",
	"Wellness & Spirituality",
	"Consulting",
	"Retail",
	"Real Estate",
	"Other",
}

// IsValidCategory reports whether c is one of BusinessCategories.
func IsValidCategory(c string) bool {
	for _, v := range BusinessCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Sectors members can tag themselves with on the profile surface.
var Sectors = []string{
	"Community",
	"Technology",
	"Healthcare",
	"Education",
	"Finance",
	"Arts & Entertainment",
	"Wellness & Spirituality",
	"Business & Entrepreneurship",
	"Other",
}

// InitialSkills seeds the skill picker on the profile-editing surface.
var InitialSkills = []string{
	"Angel Investment",
	"Startup",
	"Web Developer",
	"App Developer",
	"Designer",
	"Energetic Healer",
	"EFT",
	"Architect",
	"Accountant",
	"Life Coach",
	"Yoga Teacher",
	"Events Planning",
	"Writing",
	"Accountability Buddy",
}

// InitialEvents seeds the events-attended picker.
var InitialEvents = []string{
	"Barcelona Progressive 2024",
	"Basel Progressive 2024",
	"Cancun June 2024 - Oversoul",
	"London 2022 - Garden of Life",
	"Cancun December 2024 - One Mind-One Heart",
}
