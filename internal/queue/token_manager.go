package queue

import (
	"context"
	"errors"
	"sync"
)

// TokenManager hands out a bounded number of SMS send slots. A worker holds
// a slot for the duration of one send and gives it back afterwards.
type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no sms send slot available")

// MemoryTokenManager keeps the slots in process. It is used when Redis is
// disabled, which limits in-flight sends per instance instead of globally.
type MemoryTokenManager struct {
	mu       sync.Mutex
	tokens   int
	capacity int
}

func NewMemoryTokenManager(capacity int) *MemoryTokenManager {
	return &MemoryTokenManager{tokens: capacity, capacity: capacity}
}

func (m *MemoryTokenManager) AcquireToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens <= 0 {
		return ErrNoTokenAvailable
	}
	m.tokens--
	return nil
}

// ReleaseToken never grows the pool past its configured capacity.
func (m *MemoryTokenManager) ReleaseToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens < m.capacity {
		m.tokens++
	}
	return nil
}

func (m *MemoryTokenManager) InitializeTokens(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = count
	m.capacity = count
	return nil
}

func (m *MemoryTokenManager) Available() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens
}
