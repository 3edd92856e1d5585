// Package search aggregates substring search across the content types.
//
// # Matching
//
// The default [Aggregator.Search] matches a query by case-insensitive
// substring containment against a fixed per-type list of text fields.
// There is no relevance ranking: within each type, the first matches in
// the resolver's listing order win. [Aggregator.SearchRanked] is the
// scored alternative, backed by a per-call in-memory bleve index.
//
// # Failure Isolation
//
// Each requested type is fetched independently and concurrently. A
// failing fetch yields an empty result for that type only; the
// aggregator always returns whatever the remaining types produced.
package search
