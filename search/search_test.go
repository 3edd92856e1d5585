package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
	"github.com/clubstack/contentful-mcp/resolver"
)

type fakeClient struct {
	entries   map[string][]contentful.Entry
	failTypes map[string]bool
}

func (f *fakeClient) ListEntries(ctx context.Context, q contentful.Query) ([]contentful.Entry, error) {
	if f.failTypes[q.ContentType] {
		return nil, errors.New("simulated store failure")
	}

	var out []contentful.Entry
	for _, e := range f.entries[q.ContentType] {
		match := true
		for k, want := range q.Filters {
			got, _ := e.Fields[strings.TrimPrefix(k, "fields.")].(string)
			if got != want {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeClient) Configured() bool { return true }

func entry(id string, fields map[string]any) contentful.Entry {
	return contentful.Entry{ID: id, Fields: fields}
}

func newAggregator(c contentful.Client) *Aggregator {
	return New(resolver.New(c, zap.NewNop()), zap.NewNop())
}

func storeWithOneHackathon() *fakeClient {
	return &fakeClient{
		entries: map[string][]contentful.Entry{
			content.TypeHackathon: {
				entry("h1", map[string]any{"title": "Spring Hackathon", "description": "24 hours"}),
			},
			content.TypeBlogPost: {
				entry("p1", map[string]any{"title": "Weekly recap", "excerpt": "news"}),
			},
			content.TypeMeeting: {
				entry("m1", map[string]any{"title": "General meeting", "description": "agenda"}),
			},
			content.TypeEboardMember: {
				entry("b1", map[string]any{"name": "Ada", "position": "President", "memberType": "current"}),
			},
		},
	}
}

func TestSearch_SingleMatchUnderOneKey(t *testing.T) {
	agg := newAggregator(storeWithOneHackathon())

	res := agg.Search(context.Background(), "hackathon", nil, 0)

	if res.TotalCount != 1 {
		t.Fatalf("expected total count 1, got %d", res.TotalCount)
	}
	if len(res.Hackathons) != 1 || res.Hackathons[0].Title != "Spring Hackathon" {
		t.Errorf("expected the hackathon under the hackathons key, got %+v", res.Hackathons)
	}
	if len(res.BlogPosts) != 0 || len(res.Meetings) != 0 || len(res.EboardMembers) != 0 ||
		len(res.Graphics) != 0 || len(res.Banners) != 0 {
		t.Errorf("match leaked into other keys: %+v", res)
	}
	if res.Query != "hackathon" {
		t.Errorf("expected echoed query, got %q", res.Query)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	agg := newAggregator(storeWithOneHackathon())

	res := agg.Search(context.Background(), "SPRING hack", nil, 0)
	if res.TotalCount != 0 {
		t.Fatalf("multi-word query is a single substring, got %d matches", res.TotalCount)
	}

	res = agg.Search(context.Background(), "SPRING HACKATHON", nil, 0)
	if res.TotalCount != 1 {
		t.Errorf("expected case-insensitive match, got %d", res.TotalCount)
	}
}

func TestSearch_FailureIsolation(t *testing.T) {
	client := storeWithOneHackathon()
	client.failTypes = map[string]bool{content.TypeBlogPost: true}
	agg := newAggregator(client)

	res := agg.Search(context.Background(), "hackathon", nil, 0)

	if len(res.Hackathons) != 1 {
		t.Errorf("expected hackathon result despite blog post failure, got %+v", res.Hackathons)
	}
	if len(res.BlogPosts) != 0 {
		t.Errorf("failed type must yield empty results, got %+v", res.BlogPosts)
	}
	if len(res.TypesSearched) != len(DefaultTypes) {
		t.Errorf("all requested types count as searched, got %v", res.TypesSearched)
	}
}

func TestSearch_PerTypeLimit(t *testing.T) {
	client := &fakeClient{
		entries: map[string][]contentful.Entry{
			content.TypeBlogPost: {
				entry("1", map[string]any{"title": "go tips 1"}),
				entry("2", map[string]any{"title": "go tips 2"}),
				entry("3", map[string]any{"title": "go tips 3"}),
			},
		},
	}
	agg := newAggregator(client)

	res := agg.Search(context.Background(), "go tips", []string{KeyBlogPosts}, 2)

	if len(res.BlogPosts) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.BlogPosts))
	}
	if res.BlogPosts[0].ID != "1" || res.BlogPosts[1].ID != "2" {
		t.Errorf("limit must keep listing order, got %s, %s", res.BlogPosts[0].ID, res.BlogPosts[1].ID)
	}
}

func TestSearch_DefaultTypesExcludeGraphics(t *testing.T) {
	client := &fakeClient{
		entries: map[string][]contentful.Entry{
			content.TypeLandingPageGraphic: {
				entry("g1", map[string]any{"title": "hackathon poster"}),
			},
		},
	}
	agg := newAggregator(client)
	ctx := context.Background()

	res := agg.Search(ctx, "hackathon", nil, 0)
	if res.TotalCount != 0 {
		t.Errorf("graphics are outside the default subset, got %d matches", res.TotalCount)
	}

	res = agg.Search(ctx, "hackathon", []string{KeyLandingPageGraphics}, 0)
	if len(res.Graphics) != 1 {
		t.Errorf("graphics are searchable when requested, got %+v", res.Graphics)
	}
}

func TestSearch_UnknownTypeIgnored(t *testing.T) {
	agg := newAggregator(storeWithOneHackathon())

	res := agg.Search(context.Background(), "hackathon", []string{"podcasts", KeyHackathons}, 0)

	if len(res.TypesSearched) != 1 || res.TypesSearched[0] != KeyHackathons {
		t.Errorf("unknown types must be skipped, got %v", res.TypesSearched)
	}
	if res.TotalCount != 1 {
		t.Errorf("expected 1 match, got %d", res.TotalCount)
	}
}

func TestSearchRanked(t *testing.T) {
	agg := newAggregator(storeWithOneHackathon())

	res, err := agg.SearchRanked(context.Background(), "hackathon", nil, 10)
	if err != nil {
		t.Fatalf("SearchRanked failed: %v", err)
	}

	if len(res.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(res.Hits))
	}
	hit := res.Hits[0]
	if hit.Type != KeyHackathons || hit.ID != "h1" {
		t.Errorf("unexpected hit %+v", hit)
	}
	if hit.Score <= 0 {
		t.Errorf("expected positive score, got %f", hit.Score)
	}
	if _, ok := hit.Entity.(content.Hackathon); !ok {
		t.Errorf("expected hackathon entity, got %T", hit.Entity)
	}
}

func TestSearchRanked_Limit(t *testing.T) {
	client := &fakeClient{
		entries: map[string][]contentful.Entry{
			content.TypeBlogPost: {
				entry("1", map[string]any{"title": "gophers unite"}),
				entry("2", map[string]any{"title": "gophers assemble"}),
				entry("3", map[string]any{"title": "gophers forever"}),
			},
		},
	}
	agg := newAggregator(client)

	res, err := agg.SearchRanked(context.Background(), "gophers", []string{KeyBlogPosts}, 2)
	if err != nil {
		t.Fatalf("SearchRanked failed: %v", err)
	}
	if len(res.Hits) != 2 {
		t.Errorf("expected 2 hits, got %d", len(res.Hits))
	}
}
