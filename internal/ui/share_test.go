package ui

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebox/internal/domain"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a b", "a%20b"},
		{`"quoted"`, "%22quoted%22"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"http://x/y?z", "http%3A%2F%2Fx%2Fy%3Fz"},
		{"—", "%E2%80%94"},
		{"café", "caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeURIComponent(tt.in))

			decoded, err := url.PathUnescape(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestShareURL(t *testing.T) {
	q := domain.Quote{Text: "Be yourself.", Author: "Oscar Wilde"}
	msg := "%22Be%20yourself.%22%20%E2%80%94%20Oscar%20Wilde"

	tests := []struct {
		name     string
		provider Provider
		page     string
		want     string
		ok       bool
	}{
		{
			name:     "twitter",
			provider: ProviderTwitter,
			page:     "http://localhost:3000/",
			want:     "https://twitter.com/intent/tweet?text=" + msg,
			ok:       true,
		},
		{
			name:     "facebook",
			provider: ProviderFacebook,
			page:     "http://localhost:3000/",
			want:     "https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Flocalhost%3A3000%2F&quote=" + msg,
			ok:       true,
		},
		{
			name:     "unknown",
			provider: Provider("myspace"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShareURL(tt.provider, q, tt.page)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShareURL_MessageRoundTrips(t *testing.T) {
	q := domain.Quote{Text: "Ask & receive? 100%", Author: "Anon"}

	raw, ok := ShareURL(ProviderTwitter, q, "")
	require.True(t, ok)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, `"Ask & receive? 100%" — Anon`, u.Query().Get("text"))
}
