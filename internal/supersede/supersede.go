// Package supersede makes sure only the newest outstanding request may
// publish its result. Starting a request cancels the previous one and
// hands out a token that callers check before applying a result.
//
// Like debounce, a Guard belongs to one event loop. The contexts it hands
// out are safe to use from any goroutine.
package supersede

import "context"

// Token identifies one request started by a Guard.
type Token uint64

type Guard struct {
	epoch  Token
	cancel context.CancelFunc
}

// Begin cancels the in-flight request, if any, and starts a new one
// derived from parent.
func (g *Guard) Begin(parent context.Context) (context.Context, Token) {
	g.Cancel()
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	return ctx, g.epoch
}

// Cancel cancels the in-flight request and invalidates its token.
func (g *Guard) Cancel() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.epoch++
}

// InFlight reports whether a started request has not yet finished or been
// cancelled.
func (g *Guard) InFlight() bool {
	return g.cancel != nil
}

// Current reports whether tok belongs to the in-flight request.
func (g *Guard) Current(tok Token) bool {
	return g.cancel != nil && tok == g.epoch
}

// Finish releases the request identified by tok. It reports false, and
// does nothing, when tok has been superseded.
func (g *Guard) Finish(tok Token) bool {
	if !g.Current(tok) {
		return false
	}
	g.cancel()
	g.cancel = nil
	return true
}
