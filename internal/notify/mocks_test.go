// Package notify_test provides mock implementations for notification sender testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"sync"
)

// MockSender is a mock implementation of Sender for testing.
// It records all method calls and allows configuring return values and errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	VisualError     error
	SoundError      error
	visualAvailable bool
	soundAvailable  bool
	VisualFunc      func(context.Context, Notification) error
	SoundFunc       func(context.Context, string) error

	// Call tracking
	VisualCalls []Notification
	SoundCalls  []string
}

// NewMockSender creates a new mock sender with default behavior (all available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		visualAvailable: true,
		soundAvailable:  true,
		VisualCalls:     make([]Notification, 0),
		SoundCalls:      make([]string, 0),
	}
}

// WithVisualError configures the mock to return an error on SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// SendVisual records the call and returns the configured result
func (m *MockSender) SendVisual(ctx context.Context, n Notification) error {
	m.mu.Lock()
	m.VisualCalls = append(m.VisualCalls, n)
	fn := m.VisualFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, n)
	}
	return m.VisualError
}

// SendSound records the call and returns the configured result
func (m *MockSender) SendSound(ctx context.Context, soundFile string) error {
	m.mu.Lock()
	m.SoundCalls = append(m.SoundCalls, soundFile)
	fn := m.SoundFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, soundFile)
	}
	return m.SoundError
}

// VisualAvailable returns the configured availability
func (m *MockSender) VisualAvailable() bool { return m.visualAvailable }

// SoundAvailable returns the configured availability
func (m *MockSender) SoundAvailable() bool { return m.soundAvailable }

// VisualCallCount returns the number of SendVisual calls
func (m *MockSender) VisualCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.VisualCalls)
}

// SoundCallCount returns the number of SendSound calls
func (m *MockSender) SoundCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SoundCalls)
}
