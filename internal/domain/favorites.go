package domain

import "strconv"

// Favorites is an ordered list of saved quotes. Display order is save order.
//
// Uniqueness of (text, author) is enforced by Add only. A list built from
// external data is taken as-is and never de-duplicated after the fact.
type Favorites struct {
	items []Quote
}

// NewFavorites wraps an existing sequence. The slice is copied.
func NewFavorites(items []Quote) Favorites {
	cp := make([]Quote, len(items))
	copy(cp, items)

	return Favorites{items: cp}
}

// Len returns the number of saved quotes.
func (f *Favorites) Len() int {
	return len(f.items)
}

// Items returns a copy of the saved quotes in display order.
func (f *Favorites) Items() []Quote {
	cp := make([]Quote, len(f.items))
	copy(cp, f.items)

	return cp
}

// At returns the quote at index i.
func (f *Favorites) At(i int) (Quote, bool) {
	if i < 0 || i >= len(f.items) {
		return Quote{}, false
	}

	return f.items[i], true
}

// Contains reports whether a quote with the same text and author is saved.
func (f *Favorites) Contains(q Quote) bool {
	return f.IndexOf(q) >= 0
}

// IndexOf returns the position of the first matching quote, or -1.
func (f *Favorites) IndexOf(q Quote) int {
	for i, item := range f.items {
		if item.Equal(q) {
			return i
		}
	}

	return -1
}

// Add appends q. Returns a ConflictError if an identical quote is already saved;
// the list is left unchanged in that case.
func (f *Favorites) Add(q Quote) error {
	if f.Contains(q) {
		return NewConflictErrorWithDetails("favorite", "already saved", q.String())
	}

	f.items = append(f.items, q)

	return nil
}

// RemoveAt deletes the quote at index i. Later entries shift down by one.
// Returns a NotFoundError for an out-of-range index.
func (f *Favorites) RemoveAt(i int) (Quote, error) {
	if i < 0 || i >= len(f.items) {
		return Quote{}, NewNotFoundError("favorite", strconv.Itoa(i))
	}

	removed := f.items[i]
	f.items = append(f.items[:i:i], f.items[i+1:]...)

	return removed, nil
}
