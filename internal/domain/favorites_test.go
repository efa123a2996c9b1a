package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wilde   = Quote{Text: "Be yourself.", Author: "Oscar Wilde"}
	seneca  = Quote{Text: "Luck is what happens when preparation meets opportunity.", Author: "Seneca"}
	lao     = Quote{Text: "A journey of a thousand miles begins with a single step.", Author: "Lao Tzu"}
	unknown = Quote{Text: "Be yourself.", Author: "Unknown"}
)

func TestNewFavorites_CopiesInput(t *testing.T) {
	src := []Quote{wilde, seneca}
	favs := NewFavorites(src)

	src[0] = lao

	got, ok := favs.At(0)
	require.True(t, ok)
	assert.Equal(t, wilde, got)
}

func TestNewFavorites_KeepsExternalDuplicates(t *testing.T) {
	favs := NewFavorites([]Quote{wilde, wilde})

	assert.Equal(t, 2, favs.Len())
}

func TestFavorites_Add(t *testing.T) {
	var favs Favorites

	require.NoError(t, favs.Add(wilde))
	require.NoError(t, favs.Add(seneca))
	require.NoError(t, favs.Add(unknown), "same text with a different author is not a duplicate")

	assert.Equal(t, []Quote{wilde, seneca, unknown}, favs.Items())
}

func TestFavorites_Add_Duplicate(t *testing.T) {
	var favs Favorites
	require.NoError(t, favs.Add(wilde))

	err := favs.Add(Quote{Text: "Be yourself.", Author: "Oscar Wilde"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, favs.Len())
}

func TestFavorites_Add_NeverDuplicates(t *testing.T) {
	sequence := []Quote{wilde, seneca, wilde, lao, seneca, seneca, unknown, lao}

	var favs Favorites
	for _, q := range sequence {
		_ = favs.Add(q)
	}

	items := favs.Items()
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			assert.False(t, items[i].Equal(items[j]), "duplicate at %d and %d", i, j)
		}
	}
	assert.Equal(t, []Quote{wilde, seneca, lao, unknown}, items)
}

func TestFavorites_RemoveAt(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		removed  Quote
		expected []Quote
	}{
		{name: "first", index: 0, removed: wilde, expected: []Quote{seneca, lao}},
		{name: "middle", index: 1, removed: seneca, expected: []Quote{wilde, lao}},
		{name: "last", index: 2, removed: lao, expected: []Quote{wilde, seneca}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favs := NewFavorites([]Quote{wilde, seneca, lao})

			removed, err := favs.RemoveAt(tt.index)

			require.NoError(t, err)
			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, 2, favs.Len())
			assert.Equal(t, tt.expected, favs.Items())
		})
	}
}

func TestFavorites_RemoveAt_OutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 42} {
		favs := NewFavorites([]Quote{wilde, seneca, lao})

		_, err := favs.RemoveAt(idx)

		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 3, favs.Len())
	}
}

func TestFavorites_ItemsIsACopy(t *testing.T) {
	favs := NewFavorites([]Quote{wilde})

	items := favs.Items()
	items[0] = lao

	got, _ := favs.At(0)
	assert.Equal(t, wilde, got)
}

func TestFavorites_IndexOf(t *testing.T) {
	favs := NewFavorites([]Quote{wilde, seneca})

	assert.Equal(t, 1, favs.IndexOf(seneca))
	assert.Equal(t, -1, favs.IndexOf(lao))
	assert.True(t, favs.Contains(wilde))
}
