package inventory

import "strings"

// DefaultLimit caps query results when the caller does not specify one.
const DefaultLimit = 200

// Options control a snapshot projection.
type Options struct {
	// Text filters by case-folded substring containment against the
	// display name. Empty passes everything.
	Text string

	// Source flags use OR semantics: a record passes when any of its
	// provenance tags is among the enabled sources.
	IncludeRegistry  bool
	IncludeStartMenu bool

	// Limit clamps the result length to max(1, Limit).
	Limit int
}

// DefaultOptions returns the unfiltered projection: both sources enabled,
// no text filter, default limit.
func DefaultOptions() Options {
	return Options{
		IncludeRegistry:  true,
		IncludeStartMenu: true,
		Limit:            DefaultLimit,
	}
}

// Filter projects a snapshot through the given options. The snapshot is
// never mutated; the result is a fresh slice.
func Filter(snap *Snapshot, opts Options) []Record {
	limit := opts.Limit
	if limit < 1 {
		limit = 1
	}
	text := Normalize(opts.Text)

	// The limit is caller-supplied and unbounded above; size the result
	// from the snapshot so an extreme limit cannot blow the allocation.
	capHint := limit
	if n := len(snap.Apps); capHint > n {
		capHint = n
	}
	out := make([]Record, 0, capHint)
	for _, rec := range snap.Apps {
		if !sourceAllowed(rec, opts) {
			continue
		}
		if text != "" && !strings.Contains(rec.Key(), text) {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sourceAllowed(rec Record, opts Options) bool {
	if opts.IncludeRegistry && rec.HasSource(SourceRegistry) {
		return true
	}
	if opts.IncludeStartMenu && rec.HasSource(SourceStartMenu) {
		return true
	}
	return false
}
