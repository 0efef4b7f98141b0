// Package inventory maintains the reconciled installed-application inventory.
//
// Records gathered from multiple partial data sources are deduplicated by a
// normalized name key, merged with deterministic field precedence, and held
// in a TTL-bound snapshot cache. Snapshots are immutable and replaced
// wholesale; readers never observe a partially rebuilt inventory.
//
// Components:
//   - Record: one reconciled application with provenance tags
//   - Normalize: name → identity key derivation
//   - Merge: multi-source reconciliation
//   - Cache: snapshot holder with TTL and forced-rebuild support
//   - Filter: source/substring projection over a snapshot
package inventory
