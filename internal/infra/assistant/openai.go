package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"knowledge-hub/internal/resilience/circuitbreaker"
	"knowledge-hub/internal/resilience/retry"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAI implements the chat provider using OpenAI's chat completion API.
// It mirrors the Claude provider: rate limiter, retry with backoff and a
// circuit breaker around every call, persona sent as the system message.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	limiter         *rate.Limiter
	config          Config
	metricsRecorder ChatMetricsRecorder
}

// NewOpenAI creates an OpenAI provider with the given API key and assistant
// configuration.
func NewOpenAI(apiKey string, cfg Config) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	slog.Info("Initialized OpenAI assistant provider",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Duration("timeout", cfg.Timeout))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.AssistantAPIConfig("openai-api")),
		retryConfig:     retry.AssistantAPIConfig(),
		limiter:         rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		config:          cfg,
		metricsRecorder: NewPrometheusChatMetrics(),
	}
}

// Reply sends the user message to OpenAI and returns the assistant's answer.
func (o *OpenAI) Reply(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	if err := o.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openai api rate limit wait: %w", err)
	}

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doReply(ctx, message)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		o.metricsRecorder.RecordFailure("openai")
		return "", fmt.Errorf("openai reply failed after retries: %w", retryErr)
	}

	return result, nil
}

// doReply performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doReply(ctx context.Context, message string) (string, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "Starting chat completion",
		slog.String("request_id", requestID),
		slog.String("provider", "openai"),
		slog.Int("message_length", utf8.RuneCountInString(message)))

	o.metricsRecorder.RecordRequest("openai")
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: o.config.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
	})

	duration := time.Since(start)
	o.metricsRecorder.RecordDuration("openai", duration)

	if err != nil {
		slog.ErrorContext(ctx, "Chat completion failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	reply := resp.Choices[0].Message.Content
	o.metricsRecorder.RecordReplyLength(utf8.RuneCountInString(reply))

	slog.InfoContext(ctx, "Chat completion completed",
		slog.String("request_id", requestID),
		slog.Int("reply_length", utf8.RuneCountInString(reply)),
		slog.Duration("duration", duration))

	return reply, nil
}
