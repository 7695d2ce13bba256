// Package resilience provides reliability and fault tolerance patterns for
// calls to the upstream completion service.
//
// The package supports:
//   - Circuit breakers for external API calls (Claude, OpenAI)
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.AssistantAPIConfig("claude-api"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.AssistantAPIConfig(), func() error {
//	    return performOperation()
//	})
package resilience
