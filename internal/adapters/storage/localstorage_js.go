//go:build js && wasm

package storage

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

// ErrLocalStorageUnavailable is returned when the page has no usable
// window.localStorage (private browsing modes, sandboxed iframes).
var ErrLocalStorageUnavailable = errors.New("localStorage unavailable")

// LocalStorage is a ports.KeyValueStore over window.localStorage.
type LocalStorage struct {
	ls js.Value
}

// NewLocalStorage binds to the global localStorage object.
func NewLocalStorage() (*LocalStorage, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return nil, ErrLocalStorageUnavailable
	}
	return &LocalStorage{ls: ls}, nil
}

// Get implements ports.KeyValueStore. getItem returns null for absent keys.
func (s *LocalStorage) Get(_ context.Context, key string) (value string, ok bool, err error) {
	defer recoverJS(&err)

	v := s.ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set implements ports.KeyValueStore. A full quota surfaces as an error.
func (s *LocalStorage) Set(_ context.Context, key, value string) (err error) {
	defer recoverJS(&err)

	s.ls.Call("setItem", key, value)
	return nil
}

// recoverJS converts a thrown JS exception, which syscall/js raises as a
// Go panic of type js.Error, into an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = fmt.Errorf("localStorage: %w", jsErr)
		return
	}
	panic(r)
}
