// Package domain contains core business entities and rules.
package domain

// attributionDash separates quote text from its author in display lines.
const attributionDash = "—"

// Quote is a quotation and who it is attributed to.
// It carries no knowledge of the upstream provider's wire format.
type Quote struct {
	// Text is the body of the quote.
	Text string `json:"text"`

	// Author is who said or wrote the quote.
	Author string `json:"author"`
}

// NewQuote builds a quote from provider fields. Values are kept verbatim,
// whitespace included, since the proxy relays them unchanged.
func NewQuote(text, author string) Quote {
	return Quote{Text: text, Author: author}
}

// Equal reports whether two quotes have identical text and author.
func (q Quote) Equal(other Quote) bool {
	return q.Text == other.Text && q.Author == other.Author
}

// AuthorLine is the attribution shown under the quote text, e.g. "— Oscar Wilde".
// Empty when the author is empty.
func (q Quote) AuthorLine() string {
	if q.Author == "" {
		return ""
	}

	return attributionDash + " " + q.Author
}

// String renders the quote on a single line: "Be yourself." — Oscar Wilde
func (q Quote) String() string {
	return `"` + q.Text + `" ` + attributionDash + " " + q.Author
}
