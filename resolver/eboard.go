package resolver

import (
	"context"

	"github.com/clubstack/contentful-mcp/content"
	"github.com/clubstack/contentful-mcp/contentful"
)

func (r *Resolver) eboardMembersByType(ctx context.Context, memberType string) []content.EboardMember {
	entries := r.list(ctx, contentful.Query{
		ContentType: content.TypeEboardMember,
		Filters:     map[string]string{"fields.memberType": memberType},
		Order:       "sys.createdAt", // oldest-tenured first
	})

	members := make([]content.EboardMember, 0, len(entries))
	for _, e := range entries {
		members = append(members, content.NormalizeEboardMember(e, content.TypeEboardMember))
	}
	return members
}

// CurrentEboardMembers lists current board members, oldest-tenured first.
func (r *Resolver) CurrentEboardMembers(ctx context.Context, limit int) []content.EboardMember {
	return truncate(r.eboardMembersByType(ctx, content.MemberTypeCurrent), limit)
}

// PastEboardMembers lists past board members, oldest-tenured first.
func (r *Resolver) PastEboardMembers(ctx context.Context, limit int) []content.EboardMember {
	return truncate(r.eboardMembersByType(ctx, content.MemberTypePast), limit)
}

// AllEboardMembers concatenates current then past members.
func (r *Resolver) AllEboardMembers(ctx context.Context, limit int) []content.EboardMember {
	members := r.eboardMembersByType(ctx, content.MemberTypeCurrent)
	members = append(members, r.eboardMembersByType(ctx, content.MemberTypePast)...)
	return truncate(members, limit)
}
