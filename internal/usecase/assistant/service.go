// Package assistant provides the use case behind the AI query endpoint.
// It validates the inbound message and orchestrates the completion provider
// with logging around each stateless call.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMissingMessage is returned when the inbound message is empty after trimming.
var ErrMissingMessage = errors.New("message is required")

// Provider is the boundary to the upstream completion service.
// Implementations live in internal/infra/assistant.
type Provider interface {
	// Reply forwards one user message together with the configured persona
	// instruction and returns the textual reply verbatim.
	Reply(ctx context.Context, message string) (string, error)
}

// Service validates inbound chat messages and delegates to the provider.
// Each call is independent; no conversation state is retained.
type Service struct {
	provider Provider
}

// NewService creates a new assistant service with the given provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Query forwards the user message to the completion service and returns the
// reply text. Returns ErrMissingMessage when the message is empty after
// trimming; provider failures are wrapped and surface as upstream errors.
func (s *Service) Query(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrMissingMessage
	}

	requestID := uuid.New().String()
	slog.InfoContext(ctx, "assistant query started",
		slog.String("request_id", requestID),
		slog.Int("message_length", len(message)))

	start := time.Now()
	reply, err := s.provider.Reply(ctx, message)
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "assistant query failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", fmt.Errorf("assistant query: %w", err)
	}

	slog.InfoContext(ctx, "assistant query completed",
		slog.String("request_id", requestID),
		slog.Int("reply_length", len(reply)),
		slog.Duration("duration", duration))
	return reply, nil
}
