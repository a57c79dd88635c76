// Package dealscout extracts product details and similar-item links from
// clothing retail pages given only a URL, and keeps a history of searches.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package dealscout
