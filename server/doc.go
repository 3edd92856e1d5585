// Package server exposes the content query layer as a Model Context
// Protocol server.
//
// # Transport
//
// Three transports are supported:
//   - stdio: for local agents spawned by an MCP client
//   - HTTP: POST JSON-RPC bodies, JSON responses
//   - SSE: responses delivered as Server-Sent Events
//
// # Tools
//
// One tool per query operation, plus the aggregates:
//
//	get_blog_posts, get_blog_post_by_slug
//	get_meetings, get_upcoming_meetings
//	get_eboard_members
//	get_hackathons, get_hackathon_by_slug
//	get_landing_page_graphics, get_landing_page_graphic_by_title
//	get_parallax_banners
//	search_content, search_content_ranked
//	get_content_overview
//
// All tools return JSON text content. The resolvers underneath are
// fail-open, so a broken store produces empty results rather than tool
// errors; a JSON-RPC error is returned only when the tool wrapper
// itself fails (unknown tool, bad arguments, marshalling).
//
// # Resources
//
// Two read-only resources:
//
//	contentful://overview   count-based content overview
//	contentful://types      the known content type identifiers
package server
