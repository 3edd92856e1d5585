// Package content defines the normalized entity model and the pure
// normalization functions that produce it.
//
// Raw entries from the store are untyped attribute bags; each Normalize*
// function maps one into a stable typed record. Normalization never
// fails: a missing or mis-shaped field becomes the zero value, and
// presentation concerns stay with the caller. The content type tag on
// every record is stamped by whoever fetched it, never read from the raw
// entry.
package content
