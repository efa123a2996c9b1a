package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// bearerPattern matches Authorization header values.
	bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)

	// jwtPattern matches three base64url segments separated by dots.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
)

// DefaultRedactOptions returns the masq options applied to every log record.
//
// The proxy logs inbound request metadata and upstream failures; these options
// keep cookies, auth headers and provider keys out of the log stream. Extend
// with:
//
//	opts := append(logging.DefaultRedactOptions(), masq.WithFieldName("my_field"))
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("set_cookie"),
		masq.WithFieldName("session"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	}
}

// NewReplaceAttr returns a slog.HandlerOptions.ReplaceAttr that redacts
// sensitive attributes. Extra options are appended to the defaults.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
