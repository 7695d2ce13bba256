package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"knowledge-hub/internal/resilience/circuitbreaker"
	"knowledge-hub/internal/resilience/retry"
)

const defaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude implements the chat provider using Anthropic's Claude API.
// Calls go through a token-bucket rate limiter, retry with backoff and a
// circuit breaker; the configured persona is sent as the system prompt on
// every request.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	limiter         *rate.Limiter
	config          Config
	metricsRecorder ChatMetricsRecorder
}

// NewClaude creates a Claude provider with the given API key and assistant
// configuration.
func NewClaude(apiKey string, cfg Config) *Claude {
	if cfg.Model == "" {
		cfg.Model = defaultClaudeModel
	}

	slog.Info("Initialized Claude assistant provider",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Duration("timeout", cfg.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.AssistantAPIConfig("claude-api")),
		retryConfig:     retry.AssistantAPIConfig(),
		limiter:         rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		config:          cfg,
		metricsRecorder: NewPrometheusChatMetrics(),
	}
}

// Reply sends the user message to Claude and returns the assistant's answer.
func (c *Claude) Reply(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("claude api rate limit wait: %w", err)
	}

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doReply(ctx, message)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		c.metricsRecorder.RecordFailure("claude")
		return "", fmt.Errorf("claude reply failed after retries: %w", retryErr)
	}

	return result, nil
}

// doReply performs the actual API call without retry or circuit breaker.
func (c *Claude) doReply(ctx context.Context, message string) (string, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "Starting chat completion",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.Int("message_length", utf8.RuneCountInString(message)))

	c.metricsRecorder.RecordRequest("claude")
	start := time.Now()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: c.config.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(message),
			),
		},
	})

	duration := time.Since(start)
	c.metricsRecorder.RecordDuration("claude", duration)

	if err != nil {
		slog.ErrorContext(ctx, "Chat completion failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(resp.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	reply := textBlock.Text
	c.metricsRecorder.RecordReplyLength(utf8.RuneCountInString(reply))

	slog.InfoContext(ctx, "Chat completion completed",
		slog.String("request_id", requestID),
		slog.Int("reply_length", utf8.RuneCountInString(reply)),
		slog.Duration("duration", duration))

	return reply, nil
}
