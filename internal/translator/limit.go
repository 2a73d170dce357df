package translator

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimited spaces out calls to the wrapped translator. Waiting for a
// slot honours ctx, so a superseded request leaves the queue immediately.
type RateLimited struct {
	wrapped Translator
	limiter *rate.Limiter
}

// NewRateLimited allows perSecond calls per second with a burst of one.
func NewRateLimited(wrap Translator, perSecond float64) *RateLimited {
	return &RateLimited{
		wrapped: wrap,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (r *RateLimited) Translate(ctx context.Context, req Request) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return "", Classify(ctx.Err())
		}
		// Wait fails without ctx being done when the deadline is too close.
		return "", &BackendError{Err: err}
	}
	return r.wrapped.Translate(ctx, req)
}

// WithTimeout bounds every call to wrap by d.
func WithTimeout(wrap Translator, d time.Duration) Translator {
	return Func(func(ctx context.Context, req Request) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		out, err := wrap.Translate(ctx, req)
		if err != nil {
			return "", Classify(err)
		}
		return out, nil
	})
}
