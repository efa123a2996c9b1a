// Package acl is the anti-corruption layer between quotebox and the HTTP
// services it consumes.
//
// Each adapter owns an unexported DTO for the wire format, validates it with
// struct tags, and translates it into a [domain.Quote]. Wire types never leave
// this package and every failure comes back as a domain error:
//
//   - transport errors, breaker rejections and exhausted retries
//     become [domain.ErrUnavailable]
//   - non-2xx responses become [domain.ErrUnavailable] (404 maps to
//     [domain.ErrNotFound])
//   - undecodable or invalid payloads become [domain.ErrUnavailable]; a
//     failed field check also carries a [domain.ValidationError]
//
// Two adapters live here:
//
//   - [ZenQuotesClient] reads the upstream provider for the proxy
//     (ports.QuoteClient, ports.HealthChecker).
//   - [ProxyQuoteClient] reads the proxy's own /api/quote endpoint for
//     the browser client (ports.QuoteSource).
package acl
