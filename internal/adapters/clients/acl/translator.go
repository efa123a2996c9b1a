package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotebox/internal/adapters/clients"
	"github.com/jsamuelsen/quotebox/internal/domain"
)

// maxBodyBytes bounds how much of an upstream body is read.
const maxBodyBytes = 1 << 20

var (
	dtoValidator     *validator.Validate
	dtoValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	dtoValidatorOnce.Do(func() {
		dtoValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return dtoValidator
}

// BaseAdapter holds what every adapter needs: the shared client and the
// service name used in domain errors.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter. It panics on a nil client since
// that is a wiring bug.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	if client == nil {
		panic("acl: client is required")
	}
	return BaseAdapter{client: client, serviceName: serviceName}
}

// ServiceName returns the name used in errors and health checks.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET and returns the body of a 2xx response. The caller
// closes it. Any other outcome is mapped to a domain error.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (T, error) {
	var result T
	if body == nil {
		return result, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// ValidateDTO runs struct-tag validation on an external DTO. The first
// failing field comes back as a domain.ValidationError.
func ValidateDTO(dto any) error {
	err := getValidator().Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(fe.Field(), "failed "+fe.Tag())
	}
	return fmt.Errorf("invalid payload: %w", err)
}

// Translator converts an external DTO into a domain value, validating it on
// the way.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateFirst translates element 0 of items. An empty list is an error.
func TranslateFirst[E any, D any](items []E, translate Translator[E, D]) (*D, error) {
	if len(items) == 0 {
		return nil, errors.New("empty response list")
	}

	return translate(&items[0])
}
