// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Eprange is the canonical application identifier used for filesystem paths and CLI branding.
	Eprange = "eprange"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// SelectAtLeastOneEpisode is the single user-facing message shown when an episode-level submission is rejected.
const SelectAtLeastOneEpisode = "Select at least one episode before downloading."
