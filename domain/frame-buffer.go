package domain

import (
	"sync"

	"github.com/gammazero/deque"
)

// FrameBuffer sits between a venue connection's read pump and Poll.
// The pump pushes raw frames as fast as the socket delivers them, the
// stream pops them at its own pace. Once the pump fails the buffer
// drains and then keeps returning the failure.
type FrameBuffer struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames deque.Deque[[]byte]
	err    error
}

func NewFrameBuffer() *FrameBuffer {
	b := &FrameBuffer{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *FrameBuffer) Push(frame []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return
	}

	b.frames.PushBack(frame)
	b.cond.Signal()
}

// Fail marks the buffer dead. The first error sticks; waiters are
// released.
func (b *FrameBuffer) Fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err == nil {
		b.err = err
	}
	b.cond.Broadcast()
}

// Next blocks until a frame is buffered or the pump has failed.
// Buffered frames are handed out before the failure is reported.
func (b *FrameBuffer) Next() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.frames.Len() == 0 && b.err == nil {
		b.cond.Wait()
	}

	if b.frames.Len() > 0 {
		return b.frames.PopFront(), nil
	}
	return nil, b.err
}
