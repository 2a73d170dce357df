// Package translator defines the translation backend contract and its
// implementations.
package translator

import (
	"context"
	"errors"
	"fmt"
)

// Request is one translation of Text from Source to Target.
type Request struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Key identifies the request for caching.
func (r Request) Key() string {
	return r.Source + ":" + r.Target + ":" + r.Text
}

// Translator is a backend that turns a Request into translated text.
// Implementations must return promptly with ErrCancelled once ctx is
// cancelled.
type Translator interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Func adapts a plain function to Translator.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Translate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// ErrCancelled reports that the request was superseded before it finished.
var ErrCancelled = errors.New("translation cancelled")

// BackendError is any failure other than cancellation.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("translation backend: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Classify maps err onto ErrCancelled or a *BackendError. A nil err stays nil.
// context.Canceled counts as cancellation; a deadline is a backend failure.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	var be *BackendError
	if errors.As(err, &be) {
		return be
	}
	return &BackendError{Err: err}
}

// IsCancelled reports whether err is a cancellation outcome.
func IsCancelled(err error) bool {
	return errors.Is(Classify(err), ErrCancelled)
}
