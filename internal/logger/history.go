package logger

import (
	"sync"

	"github.com/smallnest/ringbuffer"
)

// History keeps the most recent log output in a fixed size ring.
// When the ring is full the oldest bytes are dropped.
type History struct {
	mu sync.Mutex
	rb *ringbuffer.RingBuffer
}

// NewHistory creates a history holding at most size bytes.
func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{rb: ringbuffer.New(size)}
}

// Write appends p, evicting older output as needed. It never fails.
func (h *History) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(p)
	capacity := h.rb.Capacity()
	if len(p) > capacity {
		p = p[len(p)-capacity:]
	}

	if free := h.rb.Free(); free < len(p) {
		discard := make([]byte, len(p)-free)
		if _, err := h.rb.Read(discard); err != nil {
			h.rb.Reset()
		}
	}

	if len(p) > 0 {
		if _, err := h.rb.Write(p); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Sync satisfies zapcore.WriteSyncer.
func (h *History) Sync() error {
	return nil
}

// Bytes returns a copy of the retained output without consuming it.
func (h *History) Bytes() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rb.Bytes(nil)
}

// Resize changes the capacity, keeping the newest output that still fits.
func (h *History) Resize(size int) {
	if size <= 0 {
		size = 1
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if size == h.rb.Capacity() {
		return
	}

	kept := h.rb.Bytes(nil)
	if len(kept) > size {
		kept = kept[len(kept)-size:]
	}

	h.rb = ringbuffer.New(size)
	if len(kept) > 0 {
		_, _ = h.rb.Write(kept)
	}
}

// Len reports how many bytes are retained.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rb.Length()
}

// Reset drops all retained output.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rb.Reset()
}
