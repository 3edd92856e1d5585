package resolver

import (
	"context"
	"strings"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
)

// AllBlogPosts lists posts newest-created-first. A positive limit
// truncates the sorted list.
func (r *Resolver) AllBlogPosts(ctx context.Context, limit int) []content.BlogPost {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeBlogPost,
		Order:       "-sys.createdAt",
	})

	posts := make([]content.BlogPost, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, content.NormalizeBlogPost(e, content.TypeBlogPost))
	}
	return truncate(posts, limit)
}

// BlogPostBySlug returns the first post whose slug contains slug, or
// nil when none matches. Matching is case-sensitive.
func (r *Resolver) BlogPostBySlug(ctx context.Context, slug string) *content.BlogPost {
	for _, p := range r.AllBlogPosts(ctx, 0) {
		if strings.Contains(p.Slug, slug) {
			post := p
			return &post
		}
	}
	return nil
}
