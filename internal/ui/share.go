package ui

import (
	"strings"

	"github.com/jsamuelsen/quotebox/internal/domain"
)

// Provider is a social network the current quote can be shared to.
type Provider string

const (
	ProviderTwitter  Provider = "twitter"
	ProviderFacebook Provider = "facebook"
)

const (
	twitterIntentURL  = "https://twitter.com/intent/tweet"
	facebookSharerURL = "https://www.facebook.com/sharer/sharer.php"

	// ShareTarget and ShareFeatures are passed to window.open.
	ShareTarget   = "_blank"
	ShareFeatures = "width=600,height=300"
)

// ShareURL builds the provider's share link for q. pageURL is only used by
// Facebook, which shares a page and attaches the quote to it. ok is false
// for an unknown provider.
func ShareURL(p Provider, q domain.Quote, pageURL string) (string, bool) {
	msg := encodeURIComponent(q.String())

	switch p {
	case ProviderTwitter:
		return twitterIntentURL + "?text=" + msg, true
	case ProviderFacebook:
		return facebookSharerURL + "?u=" + encodeURIComponent(pageURL) + "&quote=" + msg, true
	default:
		return "", false
	}
}

// encodeURIComponent escapes s the way the browser function of the same
// name does: UTF-8 percent-encoding of everything except A-Z a-z 0-9 and
// -_.!~*'(). net/url has no mode with exactly this set; QueryEscape turns
// spaces into '+' and PathEscape keeps ':' '@' '&' '=' '+' '$'.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
