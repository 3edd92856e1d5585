package content

import "time"

// Content type identifiers as defined in the Contentful space. Meetings
// come in two logical categories that share one entity shape.
const (
	TypeBlogPost           = "blogPost"
	TypeMeeting            = "meeting"
	TypeUpcomingMeeting    = "upcomingMeeting"
	TypeEboardMember       = "eboardMember"
	TypeHackathon          = "hackathon"
	TypeLandingPageGraphic = "landingPageGraphic"
	TypeParallaxBanner     = "parallaxBanner"
)

// Image is a resolved image reference.
type Image struct {
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
	CoverImage  *Image `json:"coverImage,omitempty"`
}

// Meeting is a general or upcoming club meeting; the two categories are
// distinguished by ContentTypeID.
type Meeting struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Title           string `json:"title"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Image           *Image `json:"image,omitempty"`
	MeetingLocation string `json:"meetingLocation,omitempty"`
	Slides          string `json:"slides,omitempty"`
	SlidesURL       string `json:"slidesUrl,omitempty"`
	Recording       string `json:"recording,omitempty"`
	ResourcesURL    string `json:"resourcesUrl,omitempty"`
}

// Member types for EboardMember.
const (
	MemberTypeCurrent = "current"
	MemberTypePast    = "past"
)

// EboardMember is a board member, current or past.
type EboardMember struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Name        string `json:"name"`
	Position    string `json:"position"`
	Description string `json:"description"`
	LinkedIn    string `json:"linkedin"`
	MemberType  string `json:"memberType"`
	Github      string `json:"github,omitempty"`
	Year        int    `json:"year,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// HackathonStatus classifies a hackathon's lifecycle phase.
type HackathonStatus string

const (
	StatusOngoing  HackathonStatus = "ongoing"
	StatusUpcoming HackathonStatus = "upcoming"
	StatusPast     HackathonStatus = "past"
)

// Hackathon is a hackathon event. Status is empty when the raw record
// carried none; classification to a definite status happens at query
// time via ClassifyHackathonStatus.
type Hackathon struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Title            string `json:"title"`
	Description      string `json:"description"`
	Slug             string `json:"slug,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	Status           string `json:"status,omitempty"`
	RegistrationLink string `json:"registrationLink,omitempty"`
	Details          string `json:"details,omitempty"`
	Image            *Image `json:"image,omitempty"`
}

// LandingPageGraphic is a homepage graphic. The backing field may be
// named either "image" or "graphic"; normalization settles on one.
type LandingPageGraphic struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       *Image `json:"image,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ParallaxBanner is a scrolling banner image.
type ParallaxBanner struct {
	ID            string    `json:"id"`
	ContentTypeID string    `json:"contentTypeId"`
	CreatedAt     time.Time `json:"createdAt"`

	Title string `json:"title"`
	Image *Image `json:"image,omitempty"`
	Link  string `json:"link,omitempty"`
}
