// Package stats computes a count-based overview of every content type.
package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clubstack/contentful-mcp/resolver"
)

// Counts holds the per-type entry counts.
type Counts struct {
	BlogPosts           int `json:"blogPosts"`
	Meetings            int `json:"meetings"`
	UpcomingMeetings    int `json:"upcomingMeetings"`
	EboardMembers       int `json:"eboardMembers"`
	Hackathons          int `json:"hackathons"`
	LandingPageGraphics int `json:"landingPageGraphics"`
	ParallaxBanners     int `json:"parallaxBanners"`
}

// Overview is the introspection envelope.
type Overview struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Counts      Counts    `json:"counts"`
	Total       int       `json:"total"`
}

// Collect lists every content type concurrently and reports counts.
//
// The resolvers are fail-open and a broken store simply yields zero
// counts, but a panic inside any of them is still guarded: it surfaces
// as a single error instead of a misleading partial overview.
func Collect(ctx context.Context, r *resolver.Resolver) (Overview, error) {
	var counts Counts

	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int, fetch func(context.Context) int) {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("overview fetch panicked: %v", rec)
				}
			}()
			*dst = fetch(ctx)
			return nil
		})
	}

	count(&counts.BlogPosts, func(ctx context.Context) int { return len(r.AllBlogPosts(ctx, 0)) })
	count(&counts.Meetings, func(ctx context.Context) int { return len(r.AllMeetings(ctx, 0)) })
	count(&counts.UpcomingMeetings, func(ctx context.Context) int { return len(r.UpcomingMeetings(ctx, 0)) })
	count(&counts.EboardMembers, func(ctx context.Context) int { return len(r.AllEboardMembers(ctx, 0)) })
	count(&counts.Hackathons, func(ctx context.Context) int { return len(r.AllHackathons(ctx, 0)) })
	count(&counts.LandingPageGraphics, func(ctx context.Context) int { return len(r.AllLandingPageGraphics(ctx, 0)) })
	count(&counts.ParallaxBanners, func(ctx context.Context) int { return len(r.ParallaxBanners(ctx, 0)) })

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	return Overview{
		GeneratedAt: time.Now().UTC(),
		Counts:      counts,
		Total: counts.BlogPosts + counts.Meetings + counts.UpcomingMeetings +
			counts.EboardMembers + counts.Hackathons +
			counts.LandingPageGraphics + counts.ParallaxBanners,
	}, nil
}
