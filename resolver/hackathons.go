package resolver

import (
	"context"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
)

// AllHackathons lists hackathons, latest start date first.
func (r *Resolver) AllHackathons(ctx context.Context, limit int) []content.Hackathon {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeHackathon,
		Order:       "-fields.startDate",
	})

	hackathons := make([]content.Hackathon, 0, len(entries))
	for _, e := range entries {
		hackathons = append(hackathons, content.NormalizeHackathon(e, content.TypeHackathon))
	}
	return truncate(hackathons, limit)
}

// hackathonPage fetches the bounded page used for client-side
// classification and lookup. Older records may predate the status
// field, so status filtering cannot be pushed to the store.
func (r *Resolver) hackathonPage(ctx context.Context) []content.Hackathon {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeHackathon,
		Order:       "-fields.startDate",
		Limit:       hackathonPageSize,
	})

	hackathons := make([]content.Hackathon, 0, len(entries))
	for _, e := range entries {
		hackathons = append(hackathons, content.NormalizeHackathon(e, content.TypeHackathon))
	}
	return hackathons
}

// HackathonsByStatus returns hackathons whose classified status equals
// status. Records with no status field classify as upcoming.
func (r *Resolver) HackathonsByStatus(ctx context.Context, status content.HackathonStatus) []content.Hackathon {
	matched := []content.Hackathon{}
	for _, h := range r.hackathonPage(ctx) {
		if content.ClassifyHackathonStatus(h.Status) == status {
			matched = append(matched, h)
		}
	}
	return matched
}

// HackathonBySlug returns the hackathon whose store identifier or slug
// field equals slug, preferring the identifier, or nil when none
// matches.
func (r *Resolver) HackathonBySlug(ctx context.Context, slug string) *content.Hackathon {
	page := r.hackathonPage(ctx)
	for _, h := range page {
		if h.ID == slug {
			match := h
			return &match
		}
	}
	for _, h := range page {
		if h.Slug != "" && h.Slug == slug {
			match := h
			return &match
		}
	}
	return nil
}
