package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/search"
	"github.com/clubstack/contentful-mcp/stats"
)

func limitSchema() map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Maximum number of results; omit for all",
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (s *Server) registerTools() {
	s.register(mcp.Tool{
		Name:        "get_blog_posts",
		Description: "List blog posts, newest first.",
		InputSchema: objectSchema(map[string]any{"limit": limitSchema()}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		posts := s.resolver.AllBlogPosts(ctx, limit)
		return map[string]any{"count": len(posts), "posts": posts}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_blog_post_by_slug",
		Description: "Get a single blog post by its slug.",
		InputSchema: objectSchema(map[string]any{
			"slug": map[string]any{"type": "string", "description": "Post slug"},
		}, "slug"),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		slug, err := reqString(args, "slug")
		if err != nil {
			return nil, err
		}
		return map[string]any{"post": s.resolver.BlogPostBySlug(ctx, slug)}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_meetings",
		Description: "List club meetings, most recent date first.",
		InputSchema: objectSchema(map[string]any{"limit": limitSchema()}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		meetings := s.resolver.AllMeetings(ctx, limit)
		return map[string]any{"count": len(meetings), "meetings": meetings}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_upcoming_meetings",
		Description: "List upcoming meetings.",
		InputSchema: objectSchema(map[string]any{"limit": limitSchema()}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		meetings := s.resolver.UpcomingMeetings(ctx, limit)
		return map[string]any{"count": len(meetings), "meetings": meetings}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_eboard_members",
		Description: "List eboard members. member_type selects current, past, or all (current listed first).",
		InputSchema: objectSchema(map[string]any{
			"member_type": map[string]any{
				"type": "string",
				"enum": []string{"current", "past", "all"},
			},
			"limit": limitSchema(),
		}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		memberType, err := optString(args, "member_type")
		if err != nil {
			return nil, err
		}

		var members []content.EboardMember
		switch memberType {
		case content.MemberTypeCurrent:
			members = s.resolver.CurrentEboardMembers(ctx, limit)
		case content.MemberTypePast:
			members = s.resolver.PastEboardMembers(ctx, limit)
		case "", "all":
			members = s.resolver.AllEboardMembers(ctx, limit)
		default:
			return nil, fmt.Errorf("%w: member_type %q", ErrInvalidArgument, memberType)
		}
		return map[string]any{"count": len(members), "members": members}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_hackathons",
		Description: "List hackathons, latest start date first. status filters to ongoing, upcoming, or past; records without a status count as upcoming.",
		InputSchema: objectSchema(map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []string{"ongoing", "upcoming", "past"},
			},
			"limit": limitSchema(),
		}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		status, err := optString(args, "status")
		if err != nil {
			return nil, err
		}

		var hackathons []content.Hackathon
		switch content.HackathonStatus(status) {
		case content.StatusOngoing, content.StatusUpcoming, content.StatusPast:
			hackathons = s.resolver.HackathonsByStatus(ctx, content.HackathonStatus(status))
			if limit > 0 && len(hackathons) > limit {
				hackathons = hackathons[:limit]
			}
		case "":
			hackathons = s.resolver.AllHackathons(ctx, limit)
		default:
			return nil, fmt.Errorf("%w: status %q", ErrInvalidArgument, status)
		}
		return map[string]any{"count": len(hackathons), "hackathons": hackathons}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_hackathon_by_slug",
		Description: "Get a single hackathon by its identifier or slug.",
		InputSchema: objectSchema(map[string]any{
			"slug": map[string]any{"type": "string", "description": "Hackathon identifier or slug"},
		}, "slug"),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		slug, err := reqString(args, "slug")
		if err != nil {
			return nil, err
		}
		return map[string]any{"hackathon": s.resolver.HackathonBySlug(ctx, slug)}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_landing_page_graphics",
		Description: "List landing page graphics, oldest first.",
		InputSchema: objectSchema(map[string]any{"limit": limitSchema()}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		graphics := s.resolver.AllLandingPageGraphics(ctx, limit)
		return map[string]any{"count": len(graphics), "graphics": graphics}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_landing_page_graphic_by_title",
		Description: "Get a single landing page graphic by exact title.",
		InputSchema: objectSchema(map[string]any{
			"title": map[string]any{"type": "string", "description": "Graphic title"},
		}, "title"),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		title, err := reqString(args, "title")
		if err != nil {
			return nil, err
		}
		return map[string]any{"graphic": s.resolver.LandingPageGraphicByTitle(ctx, title)}, nil
	})

	s.register(mcp.Tool{
		Name:        "get_parallax_banners",
		Description: "List parallax banners, oldest first.",
		InputSchema: objectSchema(map[string]any{"limit": limitSchema()}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		banners := s.resolver.ParallaxBanners(ctx, limit)
		return map[string]any{"count": len(banners), "banners": banners}, nil
	})

	s.register(mcp.Tool{
		Name:        "search_content",
		Description: "Case-insensitive substring search across content types. Default types: blog posts, meetings, eboard members, hackathons.",
		InputSchema: objectSchema(map[string]any{
			"query": map[string]any{"type": "string", "description": "Search text"},
			"types": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "enum": search.AllTypes},
				"description": "Content types to search; omit for the default set",
			},
			"limit_per_type": map[string]any{
				"type":        "integer",
				"description": "Maximum results per type (default 5)",
			},
		}, "query"),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		query, err := reqString(args, "query")
		if err != nil {
			return nil, err
		}
		types, err := optStringSlice(args, "types")
		if err != nil {
			return nil, err
		}
		perType, err := optInt(args, "limit_per_type")
		if err != nil {
			return nil, err
		}
		return s.aggregator.Search(ctx, query, types, perType), nil
	})

	s.register(mcp.Tool{
		Name:        "search_content_ranked",
		Description: "Relevance-ranked search across content types, scored with a full-text index.",
		InputSchema: objectSchema(map[string]any{
			"query": map[string]any{"type": "string", "description": "Search text"},
			"types": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": search.AllTypes},
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum total results (default 10)",
			},
		}, "query"),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		query, err := reqString(args, "query")
		if err != nil {
			return nil, err
		}
		types, err := optStringSlice(args, "types")
		if err != nil {
			return nil, err
		}
		limit, err := optInt(args, "limit")
		if err != nil {
			return nil, err
		}
		return s.aggregator.SearchRanked(ctx, query, types, limit)
	})

	s.register(mcp.Tool{
		Name:        "get_content_overview",
		Description: "Entry counts for every content type.",
		InputSchema: objectSchema(map[string]any{}),
	}, func(ctx context.Context, args map[string]any) (any, error) {
		return stats.Collect(ctx, s.resolver)
	})
}

func reqString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidArgument, key)
	}
	return s, nil
}

func optString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

func optInt(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
}

func optStringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings", ErrInvalidArgument, key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be an array of strings", ErrInvalidArgument, key)
		}
		out = append(out, s)
	}
	return out, nil
}
