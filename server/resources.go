package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/stats"
)

// Resource URIs.
const (
	ResourceOverview = "contentful://overview"
	ResourceTypes    = "contentful://types"
)

func (s *Server) handleResourcesList(id any) Response {
	resources := []map[string]any{
		{
			"uri":         ResourceOverview,
			"name":        "Content overview",
			"description": "Entry counts for every content type",
			"mimeType":    "application/json",
		},
		{
			"uri":         ResourceTypes,
			"name":        "Content types",
			"description": "The content type identifiers served by this space",
			"mimeType":    "application/json",
		},
	}

	return Response{JSONRPC: "2.0", ID: id, Result: map[string]any{"resources": resources}}
}

type resourcesReadParams struct {
	URI string `json:"uri"`
}

func (s *Server) handleResourcesRead(ctx context.Context, id any, params json.RawMessage) Response {
	var readParams resourcesReadParams
	if err := json.Unmarshal(params, &readParams); err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: ErrCodeInvalidParams, Message: err.Error()},
		}
	}

	var payload any
	switch readParams.URI {
	case ResourceOverview:
		overview, err := stats.Collect(ctx, s.resolver)
		if err != nil {
			return Response{
				JSONRPC: "2.0",
				ID:      id,
				Error:   &RPCError{Code: ErrCodeInternal, Message: err.Error()},
			}
		}
		payload = overview
	case ResourceTypes:
		payload = map[string]any{
			"contentTypes": []string{
				content.TypeBlogPost,
				content.TypeMeeting,
				content.TypeUpcomingMeeting,
				content.TypeEboardMember,
				content.TypeHackathon,
				content.TypeLandingPageGraphic,
				content.TypeParallaxBanner,
			},
		}
	default:
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error: &RPCError{
				Code:    ErrCodeInvalidParams,
				Message: fmt.Sprintf("%v: %s", ErrResourceNotFound, readParams.URI),
			},
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: ErrCodeInternal, Message: err.Error()},
		}
	}

	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"contents": []map[string]any{
				{
					"uri":      readParams.URI,
					"mimeType": "application/json",
					"text":     string(data),
				},
			},
		},
	}
}
