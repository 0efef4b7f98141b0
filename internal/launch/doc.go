// Package launch resolves a launch request into exactly one launch action.
//
// A request supplies either an opaque platform AppID (which bypasses the
// inventory entirely) or a display name resolved against the current
// inventory snapshot. Name resolution distinguishes zero-match, ambiguous
// multi-match (reported with candidate summaries, no side effect), and
// single-match outcomes; a single match is launched through a method
// priority chain: AppID handle first, existing executable path second.
//
// Launches are fire-and-forget: success means process creation succeeded,
// nothing more. Every failure is a typed, terminal error; nothing retries.
package launch
