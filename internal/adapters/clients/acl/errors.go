package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/domain"
)

// maxErrorBodyBytes caps how much of an error body is kept for logs.
const maxErrorBodyBytes = 512

// ErrorResponse is the subset of an error body worth keeping. It accepts a
// plain string ({"error":"..."}, as the proxy and ZenQuotes send) or a nested
// object ({"error":{"code":"...","message":"..."}}).
type ErrorResponse struct {
	Code    string
	Message string
}

type rawErrorResponse struct {
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

// ParseErrorResponse extracts an error message from body, or returns nil
// when nothing useful is found.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var raw rawErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBodyBytes)).Decode(&raw); err != nil {
		return nil
	}

	out := ErrorResponse{Code: raw.Code, Message: raw.Message}

	var flat string
	var nested struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	switch {
	case len(raw.Error) == 0:
	case json.Unmarshal(raw.Error, &flat) == nil:
		out.Message = flat
	case json.Unmarshal(raw.Error, &nested) == nil:
		out.Code, out.Message = nested.Code, nested.Message
	}

	if out.Code == "" && out.Message == "" {
		return nil
	}
	return &out
}

// MapHTTPError maps a failed exchange to a domain error. resp may be nil for
// transport errors; clientErr is nil when a response was received.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	reason := fmt.Sprintf("%s returned HTTP %d", operation, resp.StatusCode)
	if errResp := ParseErrorResponse(resp.Body); errResp != nil {
		reason += ": " + strings.TrimSpace(errResp.Message)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, requestPath(resp))
	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")
	default:
		return domain.NewUnavailableError(serviceName, reason)
	}
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.WrapUnavailable(serviceName, "circuit breaker open during "+operation, err)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.WrapUnavailable(serviceName, "max retries exceeded during "+operation, err)
	default:
		return domain.WrapUnavailable(serviceName, operation+" failed", err)
	}
}

func requestPath(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.Path
}
