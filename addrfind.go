// Package addrfind extracts physical U.S. mailing addresses from batches of
// websites. For each input URL it fetches the homepage, discovers likely
// contact/location subpages, aggregates the visible text, and runs an
// extraction strategy (regex-based or model-based) to produce a per-URL
// result plus a failure list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/, xlsx/).
package addrfind
