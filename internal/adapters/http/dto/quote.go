package dto

import (
	"time"

	"github.com/quotastic/quotastic/internal/domain"
)

// CreateQuoteRequest is the JSON body for submitting a quote.
//
// Text and Author are deliberately untyped: presence and type checks are
// part of the submission pipeline, which distinguishes a missing field
// from a field of the wrong type. Binding them as any preserves that.
type CreateQuoteRequest struct {
	Text   any `json:"text"`
	Author any `json:"author"`
}

// QuoteResponse is the HTTP representation of a stored quote.
type QuoteResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewQuoteResponse converts a domain Quote to its HTTP representation.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:        q.ID,
		Text:      q.Text,
		Author:    q.Author,
		Views:     q.Views,
		CreatedAt: q.CreatedAt,
	}
}

// QuoteListResponse wraps a point-in-time listing of all quotes.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}

// NewQuoteListResponse converts a domain quote slice to its HTTP representation.
func NewQuoteListResponse(quotes []domain.Quote) *QuoteListResponse {
	items := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, *NewQuoteResponse(&quotes[i]))
	}

	return &QuoteListResponse{
		Quotes: items,
		Count:  len(items),
	}
}

// StatsResponse is the HTTP representation of a statistics snapshot.
type StatsResponse struct {
	TotalQuotes      int64 `json:"totalQuotes"`
	TotalViews       int64 `json:"totalViews"`
	QuotesAdded      int64 `json:"quotesAdded"`
	ProfanityBlocked int64 `json:"profanityBlocked"`
}

// NewStatsResponse converts a domain StatsSnapshot to its HTTP representation.
func NewStatsResponse(s domain.StatsSnapshot) *StatsResponse {
	return &StatsResponse{
		TotalQuotes:      s.TotalQuotes,
		TotalViews:       s.TotalViews,
		QuotesAdded:      s.QuotesAdded,
		ProfanityBlocked: s.ProfanityBlocked,
	}
}
