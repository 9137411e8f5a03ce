// Package padel holds the rules for padel practice ratings and tournament
// results: upsert keys, player/date filtering, summaries and date-range
// shortcuts. Everything here is pure; callers pass the current snapshot and
// the current time in.
package padel
