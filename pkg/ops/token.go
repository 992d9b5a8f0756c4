package ops

import (
	"context"
	"sync"
)

// CancellationToken is a broadcast cancellation signal shared between the
// registry and the task implementing an operation. Once cancelled it never
// reverts.
type CancellationToken struct {
	once sync.Once
	ch   chan struct{}
}

// NewCancellationToken creates an unsignalled token.
func NewCancellationToken() *CancellationToken {
	return &CancellationToken{ch: make(chan struct{})}
}

// Cancel signals the token. Safe to call multiple times.
func (t *CancellationToken) Cancel() {
	t.once.Do(func() { close(t.ch) })
}

// IsCancelled polls the token.
func (t *CancellationToken) IsCancelled() bool {
	select {
	case <-t.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the token is cancelled, for use in
// select statements at suspension points.
func (t *CancellationToken) Done() <-chan struct{} {
	return t.ch
}

// Context derives a context cancelled when either the parent context or the
// token fires. The returned CancelFunc must be called to release the
// bridging goroutine.
func (t *CancellationToken) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-t.ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
