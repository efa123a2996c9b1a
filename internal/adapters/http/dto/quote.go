package dto

import "github.com/jsamuelsen/quotebox/internal/domain"

// MessageUnableToFetchQuote is the only error text /api/quote ever returns.
const MessageUnableToFetchQuote = "Unable to fetch quote"

// QuoteResponse is the /api/quote success body.
type QuoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{Text: q.Text, Author: q.Author}
}

// QuoteError is the /api/quote failure body: {"error":"Unable to fetch quote"}.
type QuoteError struct {
	Error string `json:"error"`
}

// NewQuoteError returns the fixed failure body.
func NewQuoteError() QuoteError {
	return QuoteError{Error: MessageUnableToFetchQuote}
}
