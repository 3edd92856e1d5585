package resolver

import (
	"context"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
)

// AllLandingPageGraphics lists landing page graphics, oldest first.
func (r *Resolver) AllLandingPageGraphics(ctx context.Context, limit int) []content.LandingPageGraphic {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeLandingPageGraphic,
		Order:       "sys.createdAt",
	})

	graphics := make([]content.LandingPageGraphic, 0, len(entries))
	for _, e := range entries {
		graphics = append(graphics, content.NormalizeLandingPageGraphic(e, content.TypeLandingPageGraphic))
	}
	return truncate(graphics, limit)
}

// LandingPageGraphicByTitle returns the graphic whose title equals
// title, or nil. Short-circuits without a store call when no
// credentials are configured.
func (r *Resolver) LandingPageGraphicByTitle(ctx context.Context, title string) *content.LandingPageGraphic {
	if !r.client.Configured() {
		return nil
	}

	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeLandingPageGraphic,
		Filters:     map[string]string{"fields.title": title},
		Limit:       1,
	})
	if len(entries) == 0 {
		return nil
	}
	g := content.NormalizeLandingPageGraphic(entries[0], content.TypeLandingPageGraphic)
	return &g
}

// ParallaxBanners lists banners, oldest first.
func (r *Resolver) ParallaxBanners(ctx context.Context, limit int) []content.ParallaxBanner {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeParallaxBanner,
		Order:       "sys.createdAt",
	})

	banners := make([]content.ParallaxBanner, 0, len(entries))
	for _, e := range entries {
		banners = append(banners, content.NormalizeParallaxBanner(e, content.TypeParallaxBanner))
	}
	return truncate(banners, limit)
}
