package resolver

import (
	"context"
	"sort"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
)

// AllMeetings lists general meetings, most recent date first. The
// store is asked to sort, but the order is re-derived client-side
// because the server-side date sort has proven unreliable.
func (r *Resolver) AllMeetings(ctx context.Context, limit int) []content.Meeting {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeMeeting,
		Order:       "-fields.date",
	})

	meetings := make([]content.Meeting, 0, len(entries))
	for _, e := range entries {
		meetings = append(meetings, content.NormalizeMeeting(e, content.TypeMeeting))
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		ti, iOK := content.ParseDate(meetings[i].Date)
		tj, jOK := content.ParseDate(meetings[j].Date)
		if iOK != jOK {
			return iOK // parseable dates sort ahead of unparseable ones
		}
		return ti.After(tj)
	})
	return truncate(meetings, limit)
}

// UpcomingMeetings lists the distinct upcoming-meeting category in
// store-provided order.
func (r *Resolver) UpcomingMeetings(ctx context.Context, limit int) []content.Meeting {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeUpcomingMeeting,
	})

	meetings := make([]content.Meeting, 0, len(entries))
	for _, e := range entries {
		meetings = append(meetings, content.NormalizeMeeting(e, content.TypeUpcomingMeeting))
	}
	return truncate(meetings, limit)
}
