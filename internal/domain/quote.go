// Package domain contains core business entities and rules.
package domain

import "time"

// Quote is a piece of text saved by a user, labelled with shared tags.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the store-assigned identifier.
	ID int64

	// Text is the quotation itself.
	Text string

	// UserID is the owner. It never changes after creation.
	UserID int64

	// Tags are the labels attached to the quote.
	Tags []Tag

	// CreatedAt is when the quote was stored.
	CreatedAt time.Time
}

// TagIDs returns the ids of the quote's tags in attachment order.
func (q *Quote) TagIDs() []int64 {
	ids := make([]int64, 0, len(q.Tags))
	for _, t := range q.Tags {
		ids = append(ids, t.ID)
	}

	return ids
}

// OwnedBy reports whether userID owns the quote.
func (q *Quote) OwnedBy(userID int64) bool {
	return q.UserID == userID
}

// NewQuote carries the fields needed to persist a quote.
type NewQuote struct {
	Text   string
	UserID int64
	TagIDs []int64
}

// Tag is a globally unique, colour-coded label shared across quotes.
type Tag struct {
	ID    int64
	Name  string
	Color string
}
