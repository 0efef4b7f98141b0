package inventory

import "sort"

// Merge reconciles records sharing a normalized name key into one record
// per key. Input order is the precedence contract: the first-seen record
// wins ties on every field, later records only fill gaps. Callers choose
// precedence by the order in which they concatenate collector output.
//
// Output order is unspecified; sorting is the cache's responsibility.
func Merge(records []Record) []Record {
	merged := make(map[string]*Record, len(records))

	for _, rec := range records {
		if !rec.Valid() {
			continue
		}
		key := rec.Key()
		existing, ok := merged[key]
		if !ok {
			cp := rec
			cp.Sources = unionSources(nil, rec.Sources)
			merged[key] = &cp
			continue
		}
		existing.absorb(rec)
	}

	out := make([]Record, 0, len(merged))
	for _, rec := range merged {
		out = append(out, *rec)
	}
	return out
}

// absorb fills the receiver's empty fields from incoming and unions the
// provenance tags. The display name keeps the first-seen casing.
func (r *Record) absorb(incoming Record) {
	if r.AppID == "" {
		r.AppID = incoming.AppID
	}
	if r.ExePath == "" {
		r.ExePath = incoming.ExePath
	}
	if r.Version == "" {
		r.Version = incoming.Version
	}
	if r.Publisher == "" {
		r.Publisher = incoming.Publisher
	}
	if r.InstallLocation == "" {
		r.InstallLocation = incoming.InstallLocation
	}
	r.Sources = unionSources(r.Sources, incoming.Sources)
}

// unionSources merges two tag sets, deduplicated and sorted for
// deterministic output.
func unionSources(a, b []Source) []Source {
	seen := make(map[Source]struct{}, len(a)+len(b))
	out := make([]Source, 0, len(a)+len(b))
	for _, set := range [][]Source{a, b} {
		for _, s := range set {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
