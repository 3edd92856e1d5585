package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// RankedHit is one scored search result.
type RankedHit struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Score  float64 `json:"score"`
	Entity any     `json:"entity"`
}

// RankedResults is the envelope for SearchRanked.
type RankedResults struct {
	Query         string      `json:"query"`
	TypesSearched []string    `json:"typesSearched"`
	TotalCount    int         `json:"totalCount"`
	Hits          []RankedHit `json:"hits"`
}

// indexDoc is what gets indexed per entity. Bleve's default mapping
// indexes both string fields.
type indexDoc struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type rankedEntry struct {
	typeKey string
	title   string
	entity  any
	doc     indexDoc
}

// SearchRanked scores query against the requested types with a per-call
// in-memory bleve index and returns the top limit hits across all
// types. Fetch failures degrade to missing entries, exactly as in
// Search; only index construction or query execution returns an error.
func (a *Aggregator) SearchRanked(ctx context.Context, query string, types []string, limit int) (RankedResults, error) {
	if len(types) == 0 {
		types = DefaultTypes
	}
	if limit <= 0 {
		limit = 10
	}

	res := RankedResults{Query: query}

	var mu sync.Mutex
	entries := make(map[string]rankedEntry)
	add := func(typeKey, id, title string, entity any, text string) {
		mu.Lock()
		defer mu.Unlock()
		entries[typeKey+"/"+id] = rankedEntry{
			typeKey: typeKey,
			title:   title,
			entity:  entity,
			doc:     indexDoc{Title: title, Text: text},
		}
	}

	var wg sync.WaitGroup
	for _, t := range types {
		switch t {
		case KeyBlogPosts:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, p := range a.resolver.AllBlogPosts(ctx, 0) {
					add(KeyBlogPosts, p.ID, p.Title, p, p.Excerpt+" "+p.Author)
				}
			}()
		case KeyMeetings:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, m := range a.resolver.AllMeetings(ctx, 0) {
					add(KeyMeetings, m.ID, m.Title, m, m.Description)
				}
			}()
		case KeyEboardMembers:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, m := range a.resolver.AllEboardMembers(ctx, 0) {
					add(KeyEboardMembers, m.ID, m.Name, m, m.Position+" "+m.Description)
				}
			}()
		case KeyHackathons:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, h := range a.resolver.AllHackathons(ctx, 0) {
					add(KeyHackathons, h.ID, h.Title, h, h.Description)
				}
			}()
		case KeyLandingPageGraphics:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, g := range a.resolver.AllLandingPageGraphics(ctx, 0) {
					add(KeyLandingPageGraphics, g.ID, g.Title, g, g.Description)
				}
			}()
		case KeyParallaxBanners:
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, b := range a.resolver.ParallaxBanners(ctx, 0) {
					add(KeyParallaxBanners, b.ID, b.Title, b, "")
				}
			}()
		default:
			continue
		}
		res.TypesSearched = append(res.TypesSearched, t)
	}
	wg.Wait()

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return res, fmt.Errorf("build search index: %w", err)
	}
	defer idx.Close()

	for key, e := range entries {
		if err := idx.Index(key, e.doc); err != nil {
			return res, fmt.Errorf("index %s: %w", key, err)
		}
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	result, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return res, fmt.Errorf("execute ranked search: %w", err)
	}

	for _, hit := range result.Hits {
		e, ok := entries[hit.ID]
		if !ok {
			continue
		}
		res.Hits = append(res.Hits, RankedHit{
			ID:     hit.ID[len(e.typeKey)+1:],
			Type:   e.typeKey,
			Title:  e.title,
			Score:  hit.Score,
			Entity: e.entity,
		})
	}
	res.TotalCount = len(res.Hits)
	return res, nil
}
