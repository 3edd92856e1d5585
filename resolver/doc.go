// Package resolver implements the per-type query operations over the
// content store.
//
// Every operation is total: on any failure (network, decoding) it logs
// the error and returns an empty slice or nil, never an error. This is a
// deliberate fail-open policy — an unreachable store degrades the
// feature instead of propagating a service error. The cost is that
// callers cannot distinguish "no matching content" from "store
// unreachable" without the logs; the structured log entry emitted on
// every suppressed failure is the diagnostic channel for that.
package resolver
