// Package contentful provides a minimal client for the Contentful
// Content Delivery API (CDA).
//
// The client exposes a single logical operation, listing entries that
// match a [Query]. Linked assets returned in the response's includes
// block are resolved in place, so callers see an [*Asset] where the raw
// entry carried an asset link.
//
// # Degraded Mode
//
// [AcquireClient] never fails. When credentials are missing or the
// client cannot be constructed, it logs a warning and returns a null
// client whose ListEntries always succeeds with an empty result. This
// lets every caller assume a client exists and treat "no connection" the
// same as "no content".
package contentful
