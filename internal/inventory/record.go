package inventory

import "strings"

// Source identifies the provenance of a record.
type Source string

const (
	SourceRegistry  Source = "registry"
	SourceStartMenu Source = "startmenu"
)

// Record describes one installed or launchable application.
//
// Name is the only required field and doubles as the identity source via
// Normalize. ExePath and AppID live in distinct namespaces: AppID is an
// opaque platform launch handle and is preferred for launching when present.
type Record struct {
	Name            string   `json:"name"`
	Version         string   `json:"version,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	InstallLocation string   `json:"install_location,omitempty"`
	ExePath         string   `json:"exe_path,omitempty"`
	AppID           string   `json:"app_id,omitempty"`
	Sources         []Source `json:"sources"`
}

// Normalize derives the identity key for a display name: surrounding
// whitespace is trimmed and the result is case-folded. Two records with
// equal keys are treated as the same application regardless of casing.
//
// Distinct applications that share a display name are not distinguishable
// and will be merged; this is a documented limitation of the name-only
// identity key, not a defect to work around here.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Key returns the record's normalized identity key.
func (r Record) Key() string {
	return Normalize(r.Name)
}

// Valid reports whether the record carries enough identity to participate
// in a merge. Records with a blank name are dropped by the merge engine.
func (r Record) Valid() bool {
	return r.Key() != ""
}

// HasSource reports whether src is among the record's provenance tags.
func (r Record) HasSource(src Source) bool {
	for _, s := range r.Sources {
		if s == src {
			return true
		}
	}
	return false
}
