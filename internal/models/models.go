// Package models defines the data structures that map to rows in the hosted
// Supabase backend. The struct field tags (the backtick strings like
// `json:"..."`) control how each field is serialised when a record travels
// to or from the backend's REST interface and in our own API responses.
//
// There is a single persisted entity: the Content Item. Items are created
// once at ingestion time and are read-only afterwards; this service never
// updates or deletes them.
package models

import "time"

// LanguageUnknown is the sentinel language code used when detection fails.
// A Content Item's language_code is always populated: either a two-letter
// ISO 639-1 code or this value, never an empty string.
const LanguageUnknown = "unknown"

// ContentItem is a persisted record as the backend returns it.
// ID and CreatedAt are assigned by the backend when the row is inserted;
// this service never sets them.
type ContentItem struct {
	ID           int64     `json:"id"`            // Backend-assigned row identifier
	Source       string    `json:"source"`        // Free-text origin identifier (e.g. "twitter")
	Content      string    `json:"content"`       // The submitted text body
	LanguageCode string    `json:"language_code"` // ISO 639-1 code or "unknown"
	Labels       []string  `json:"labels"`        // Tag set attached at creation
	CreatedAt    time.Time `json:"created_at"`    // Backend-assigned creation timestamp
}

// NewContentItem is the insert payload for a Content Item. It deliberately
// omits ID and CreatedAt so the backend assigns both; sending them would
// override the backend's column defaults.
type NewContentItem struct {
	Source       string   `json:"source"`
	Content      string   `json:"content"`
	LanguageCode string   `json:"language_code"`
	Labels       []string `json:"labels"`
}
