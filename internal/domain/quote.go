// Package domain contains core business entities and rules.
package domain

import "time"

// Field limits for submitted quotes. Lengths are counted in characters
// (runes) and checked against the submitted value before trimming.
const (
	// MaxTextLength is the maximum allowed length of a quote's text.
	MaxTextLength = 1000

	// MaxAuthorLength is the maximum allowed length of a quote's author.
	MaxAuthorLength = 100
)

// Quote represents a stored quotation with its author and view counter.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier for this quote. The store assigns ids
	// monotonically and never reuses one after deletion.
	ID int64

	// Text is the text of the quote, trimmed of surrounding whitespace.
	Text string

	// Author is who said or wrote the quote, trimmed likewise.
	Author string

	// Views counts successful random reads that returned this quote.
	// It only increases; the store is its sole mutator.
	Views int64

	// CreatedAt is set once at creation and never changes.
	CreatedAt time.Time
}

// StoreStats holds the aggregate counts derived from the live quote set.
type StoreStats struct {
	// TotalQuotes is the number of live quotes.
	TotalQuotes int64

	// TotalViews is the sum of Views across all live quotes.
	TotalViews int64
}

// StatsSnapshot combines store-derived counts with process-lifetime event
// counters. It is computed on demand and never persisted.
type StatsSnapshot struct {
	TotalQuotes      int64 `json:"totalQuotes"`
	TotalViews       int64 `json:"totalViews"`
	QuotesAdded      int64 `json:"quotesAdded"`
	ProfanityBlocked int64 `json:"profanityBlocked"`
}
