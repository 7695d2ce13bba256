package assistant

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled provider for every request.
var ErrNotConfigured = errors.New("assistant provider not configured")

// Disabled is the provider used when no API key is configured. It fails
// closed so the handler surfaces an upstream failure instead of a silent
// canned answer.
type Disabled struct{}

// NewDisabled creates a provider that rejects every request.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Reply always returns ErrNotConfigured.
func (d *Disabled) Reply(_ context.Context, _ string) (string, error) {
	return "", ErrNotConfigured
}
