package translator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultMockLatency is the simulated round trip of the mock backend.
const DefaultMockLatency = 300 * time.Millisecond

// Mock is a development stand-in that tags the input with the language
// pair after a fixed delay.
type Mock struct {
	Latency time.Duration
}

func NewMock(latency time.Duration) *Mock {
	return &Mock{Latency: latency}
}

func (m *Mock) Translate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", Classify(err)
	}
	if m.Latency > 0 {
		timer := time.NewTimer(m.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", Classify(ctx.Err())
		}
	}
	if req.Text == "" {
		return "", nil
	}
	return fmt.Sprintf("%s → [%s→%s]", req.Text,
		strings.ToUpper(req.Source), strings.ToUpper(req.Target)), nil
}
