package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// CreateQuoteRequest is the body of POST /quotes.
type CreateQuoteRequest struct {
	Text string   `json:"text" validate:"required"`
	Tags []string `json:"tags" validate:"omitempty,dive,required"`
}

// TagResponse is a tag as returned to callers.
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// QuoteResponse is a quote as returned to callers.
type QuoteResponse struct {
	ID        int64         `json:"id"`
	Text      string        `json:"text"`
	UserID    int64         `json:"userId"`
	CreatedAt time.Time     `json:"createdAt"`
	Tags      []TagResponse `json:"tags"`
}

// QuoteMessageResponse pairs a quote with an outcome message.
type QuoteMessageResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

// NewQuoteResponse converts a domain quote. Tags is never null.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Text:      q.Text,
		UserID:    q.UserID,
		CreatedAt: q.CreatedAt,
		Tags: lo.Map(q.Tags, func(t domain.Tag, _ int) TagResponse {
			return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color}
		}),
	}
}

// NewQuoteListResponse converts a list of quotes. The result is never null.
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	return lo.Map(quotes, func(q domain.Quote, _ int) QuoteResponse {
		return NewQuoteResponse(&q)
	})
}
