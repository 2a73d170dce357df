package translator

import (
	"fmt"
	"time"
)

// Backend kinds accepted by New.
const (
	KindMock   = "mock"
	KindRemote = "remote"
)

// Options selects and tunes a backend chain.
type Options struct {
	Kind      string
	URL       string        // remote only
	Latency   time.Duration // mock only
	Timeout   time.Duration // 0 disables
	RateLimit float64       // calls per second, 0 disables
	CacheSize int           // 0 disables
}

// New builds the backend described by opts. Decorators are applied inside
// out: timeout, then rate limit, then cache, so cache hits skip the limiter.
func New(opts Options) (Translator, error) {
	var t Translator
	switch opts.Kind {
	case "", KindMock:
		t = NewMock(opts.Latency)
	case KindRemote:
		if opts.URL == "" {
			return nil, fmt.Errorf("remote backend: url is required")
		}
		t = NewRemote(opts.URL, 0)
	default:
		return nil, fmt.Errorf("unknown backend kind %q", opts.Kind)
	}

	if opts.Timeout > 0 {
		t = WithTimeout(t, opts.Timeout)
	}
	if opts.RateLimit > 0 {
		t = NewRateLimited(t, opts.RateLimit)
	}
	if opts.CacheSize > 0 {
		cached, err := NewCached(t, opts.CacheSize)
		if err != nil {
			return nil, err
		}
		t = cached
	}
	return t, nil
}
