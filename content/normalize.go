package content

import "github.com/clubstack/contentful-mcp/contentful"

// NormalizeBlogPost maps a raw entry into a BlogPost tagged typeID.
func NormalizeBlogPost(e contentful.Entry, typeID string) BlogPost {
	f := e.Fields
	return BlogPost{
		ID:            e.ID,
		ContentTypeID: typeID,
		CreatedAt:     e.CreatedAt,
		Title:         stringField(f, "title"),
		Slug:          stringField(f, "slug"),
		Content:       stringField(f, "content"),
		Excerpt:       stringField(f, "excerpt"),
		Author:        stringField(f, "author"),
		PublishDate:   stringField(f, "publishDate"),
		CoverImage:    imageField(f, "coverImage"),
	}
}

// NormalizeMeeting maps a raw entry into a Meeting tagged typeID. Both
// meeting categories share this shape.
func NormalizeMeeting(e contentful.Entry, typeID string) Meeting {
	f := e.Fields
	return Meeting{
		ID:              e.ID,
		ContentTypeID:   typeID,
		CreatedAt:       e.CreatedAt,
		Title:           stringField(f, "title"),
		Date:            stringField(f, "date"),
		Description:     stringField(f, "description"),
		Image:           imageField(f, "image"),
		MeetingLocation: stringField(f, "meetingLocation"),
		Slides:          assetURLField(f, "slides"),
		SlidesURL:       stringField(f, "slidesUrl"),
		Recording:       stringField(f, "recording"),
		ResourcesURL:    stringField(f, "resourcesUrl"),
	}
}

// NormalizeEboardMember maps a raw entry into an EboardMember tagged typeID.
func NormalizeEboardMember(e contentful.Entry, typeID string) EboardMember {
	f := e.Fields
	return EboardMember{
		ID:            e.ID,
		ContentTypeID: typeID,
		CreatedAt:     e.CreatedAt,
		Name:          stringField(f, "name"),
		Position:      stringField(f, "position"),
		Description:   stringField(f, "description"),
		LinkedIn:      stringField(f, "linkedin"),
		MemberType:    stringField(f, "memberType"),
		Github:        stringField(f, "github"),
		Year:          intField(f, "year"),
		Image:         imageField(f, "image"),
	}
}

// NormalizeHackathon maps a raw entry into a Hackathon tagged typeID.
// An absent status stays absent here; classification is the caller's
// concern.
func NormalizeHackathon(e contentful.Entry, typeID string) Hackathon {
	f := e.Fields
	return Hackathon{
		ID:               e.ID,
		ContentTypeID:    typeID,
		CreatedAt:        e.CreatedAt,
		Title:            stringField(f, "title"),
		Description:      stringField(f, "description"),
		Slug:             stringField(f, "slug"),
		StartDate:        stringField(f, "startDate"),
		EndDate:          stringField(f, "endDate"),
		Status:           stringField(f, "status"),
		RegistrationLink: stringField(f, "registrationLink"),
		Details:          stringField(f, "details"),
		Image:            imageField(f, "image"),
	}
}

// NormalizeLandingPageGraphic maps a raw entry into a LandingPageGraphic
// tagged typeID. The image may live under "image" or "graphic"; "image"
// wins when both resolve, and a graphic-only record is backfilled into
// the image field so consumers have one field to read.
func NormalizeLandingPageGraphic(e contentful.Entry, typeID string) LandingPageGraphic {
	f := e.Fields
	img := imageField(f, "image")
	if img == nil {
		img = imageField(f, "graphic")
	}

	g := LandingPageGraphic{
		ID:            e.ID,
		ContentTypeID: typeID,
		CreatedAt:     e.CreatedAt,
		Title:         stringField(f, "title"),
		Description:   stringField(f, "description"),
		Image:         img,
	}
	if img != nil {
		g.ImageURL = img.URL
	}
	return g
}

// NormalizeParallaxBanner maps a raw entry into a ParallaxBanner tagged typeID.
func NormalizeParallaxBanner(e contentful.Entry, typeID string) ParallaxBanner {
	f := e.Fields
	return ParallaxBanner{
		ID:            e.ID,
		ContentTypeID: typeID,
		CreatedAt:     e.CreatedAt,
		Title:         stringField(f, "title"),
		Image:         imageField(f, "image"),
		Link:          stringField(f, "link"),
	}
}

// ClassifyHackathonStatus maps the raw optional status field to a
// definite status. Absent and unrecognized values classify as upcoming,
// so querying all three statuses partitions every record exactly once.
func ClassifyHackathonStatus(raw string) HackathonStatus {
	switch HackathonStatus(raw) {
	case StatusOngoing:
		return StatusOngoing
	case StatusPast:
		return StatusPast
	default:
		return StatusUpcoming
	}
}
