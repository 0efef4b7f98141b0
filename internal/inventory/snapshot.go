package inventory

import (
	"strings"
	"time"
)

// Snapshot is an immutable, internally consistent inventory built at one
// point in time. Records are sorted by case-insensitive display name and
// unique by normalized key.
type Snapshot struct {
	Apps    []Record
	BuiltAt time.Time
}

// Match returns the records matching a display name. With exact set, a
// record matches when its normalized key equals the normalized name; by
// the snapshot's key-uniqueness invariant this yields at most one record.
// Otherwise a record matches when its key contains the normalized name as
// a substring.
func (s *Snapshot) Match(name string, exact bool) []Record {
	key := Normalize(name)
	var matches []Record
	for _, rec := range s.Apps {
		if exact {
			if rec.Key() == key {
				matches = append(matches, rec)
			}
			continue
		}
		if strings.Contains(rec.Key(), key) {
			matches = append(matches, rec)
		}
	}
	return matches
}
