package search

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/resolver"
)

// Type keys used in result envelopes and type-subset parameters.
const (
	KeyBlogPosts           = "blogPosts"
	KeyMeetings            = "meetings"
	KeyEboardMembers       = "eboardMembers"
	KeyHackathons          = "hackathons"
	KeyLandingPageGraphics = "landingPageGraphics"
	KeyParallaxBanners     = "parallaxBanners"
)

// DefaultPerTypeLimit caps results per type when the caller passes no limit.
const DefaultPerTypeLimit = 5

// DefaultTypes is the default search subset. Graphics and banners are
// queryable explicitly but excluded here: besides their titles they
// carry no searchable prose.
var DefaultTypes = []string{KeyBlogPosts, KeyMeetings, KeyEboardMembers, KeyHackathons}

// AllTypes enumerates every searchable type key.
var AllTypes = []string{
	KeyBlogPosts, KeyMeetings, KeyEboardMembers,
	KeyHackathons, KeyLandingPageGraphics, KeyParallaxBanners,
}

// Results is the aggregate search envelope: the echoed query, the types
// actually searched, the summed count, and per-type result arrays.
type Results struct {
	Query         string                       `json:"query"`
	TypesSearched []string                     `json:"typesSearched"`
	TotalCount    int                          `json:"totalCount"`
	BlogPosts     []content.BlogPost           `json:"blogPosts,omitempty"`
	Meetings      []content.Meeting            `json:"meetings,omitempty"`
	EboardMembers []content.EboardMember       `json:"eboardMembers,omitempty"`
	Hackathons    []content.Hackathon          `json:"hackathons,omitempty"`
	Graphics      []content.LandingPageGraphic `json:"landingPageGraphics,omitempty"`
	Banners       []content.ParallaxBanner     `json:"parallaxBanners,omitempty"`
}

// Aggregator fans a query out across the per-type resolvers.
type Aggregator struct {
	resolver *resolver.Resolver
	logger   *zap.Logger
}

// New builds an Aggregator over r.
func New(r *resolver.Resolver, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{resolver: r, logger: logger}
}

// Search runs a case-insensitive substring search for query across the
// requested types. A nil or empty types slice means DefaultTypes; a
// non-positive perTypeLimit means DefaultPerTypeLimit. All per-type
// fetches run concurrently, and a failure in one type never suppresses
// the results of another.
func (a *Aggregator) Search(ctx context.Context, query string, types []string, perTypeLimit int) Results {
	if len(types) == 0 {
		types = DefaultTypes
	}
	if perTypeLimit <= 0 {
		perTypeLimit = DefaultPerTypeLimit
	}

	res := Results{Query: query}

	var wg sync.WaitGroup
	for _, t := range types {
		switch t {
		case KeyBlogPosts:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.BlogPosts = matchFirst(a.resolver.AllBlogPosts(ctx, 0), query, perTypeLimit, matchBlogPost)
			}()
		case KeyMeetings:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.Meetings = matchFirst(a.resolver.AllMeetings(ctx, 0), query, perTypeLimit, matchMeeting)
			}()
		case KeyEboardMembers:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.EboardMembers = matchFirst(a.resolver.AllEboardMembers(ctx, 0), query, perTypeLimit, matchEboardMember)
			}()
		case KeyHackathons:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.Hackathons = matchFirst(a.resolver.AllHackathons(ctx, 0), query, perTypeLimit, matchHackathon)
			}()
		case KeyLandingPageGraphics:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.Graphics = matchFirst(a.resolver.AllLandingPageGraphics(ctx, 0), query, perTypeLimit, matchGraphic)
			}()
		case KeyParallaxBanners:
			wg.Add(1)
			go func() {
				defer wg.Done()
				res.Banners = matchFirst(a.resolver.ParallaxBanners(ctx, 0), query, perTypeLimit, matchBanner)
			}()
		default:
			a.logger.Warn("unknown search type ignored", zap.String("type", t))
			continue
		}
		res.TypesSearched = append(res.TypesSearched, t)
	}
	wg.Wait()

	res.TotalCount = len(res.BlogPosts) + len(res.Meetings) + len(res.EboardMembers) +
		len(res.Hackathons) + len(res.Graphics) + len(res.Banners)
	return res
}

// matchFirst keeps the first limit items matching query, preserving
// listing order.
func matchFirst[T any](items []T, query string, limit int, match func(T, string) bool) []T {
	var out []T
	for _, item := range items {
		if !match(item, query) {
			continue
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchBlogPost(p content.BlogPost, q string) bool {
	return containsFold(p.Title, q) || containsFold(p.Excerpt, q) || containsFold(p.Author, q)
}

func matchMeeting(m content.Meeting, q string) bool {
	return containsFold(m.Title, q) || containsFold(m.Description, q)
}

func matchEboardMember(m content.EboardMember, q string) bool {
	return containsFold(m.Name, q) || containsFold(m.Position, q) || containsFold(m.Description, q)
}

func matchHackathon(h content.Hackathon, q string) bool {
	return containsFold(h.Title, q) || containsFold(h.Description, q)
}

func matchGraphic(g content.LandingPageGraphic, q string) bool {
	return containsFold(g.Title, q) || containsFold(g.Description, q)
}

func matchBanner(b content.ParallaxBanner, q string) bool {
	return containsFold(b.Title, q)
}
