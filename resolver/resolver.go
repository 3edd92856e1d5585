package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/clubstack/contentful-mcp/contentful"
)

// hackathonPageSize bounds the page fetched for client-side hackathon
// classification and lookup.
const hackathonPageSize = 100

// Resolver answers typed queries against the content store. It holds no
// state beyond the injected client and logger and is safe for
// concurrent use.
type Resolver struct {
	client contentful.Client
	logger *zap.Logger
}

// New builds a Resolver over the given client.
func New(client contentful.Client, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{client: client, logger: logger}
}

// list issues one store query and logs-and-swallows any failure.
func (r *Resolver) list(ctx context.Context, q contentful.Query) []contentful.Entry {
	entries, err := r.client.ListEntries(ctx, q)
	if err != nil {
		r.logger.Error("content fetch failed",
			zap.String("contentType", q.ContentType),
			zap.Error(err))
		return nil
	}
	return entries
}

// truncate caps s at limit. A non-positive limit means no cap.
func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
