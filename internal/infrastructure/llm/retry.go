package llm

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"dealdesk/internal/infrastructure/metrics"
	"dealdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Messages that mean the provider is temporarily out of capacity.
var retryablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)high\s+demand`),
	regexp.MustCompile(`(?i)E003`),
	regexp.MustCompile(`(?i)unavailable`),
	regexp.MustCompile(`(?i)throttl`),
	regexp.MustCompile(`(?i)try\s+again\s+later`),
	regexp.MustCompile(`503`),
	regexp.MustCompile(`502`),
}

// IsRetryable reports whether err looks like temporary provider capacity.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, p := range retryablePatterns {
		if p.MatchString(msg) {
			return true
		}
	}
	return false
}

// RetryPolicy is exponential backoff: attempt n waits
// InitialDelay * BackoffMultiplier^n before retrying.
type RetryPolicy struct {
	MaxRetries        int
	InitialDelay      time.Duration
	BackoffMultiplier float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, InitialDelay: 2 * time.Second, BackoffMultiplier: 2}
}

// Delay returns the wait before retry number attempt (0-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := float64(p.InitialDelay)
	for i := 0; i < attempt; i++ {
		d *= p.BackoffMultiplier
	}
	return time.Duration(d)
}

// RetryingClient retries capacity errors from the wrapped client. Other
// errors are returned at once.
type RetryingClient struct {
	next   interfaces.ILLMClient
	policy RetryPolicy
	log    *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

var _ interfaces.ILLMClient = (*RetryingClient)(nil)

func WithRetry(next interfaces.ILLMClient, policy RetryPolicy, log *zap.Logger) *RetryingClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &RetryingClient{next: next, policy: policy, log: log, sleep: sleepContext}
}

func (c *RetryingClient) Provider() string {
	return c.next.Provider()
}

func (c *RetryingClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	for attempt := 0; ; attempt++ {
		out, err := c.next.Complete(ctx, systemPrompt, prompt)
		if err == nil {
			return out, nil
		}
		if attempt >= c.policy.MaxRetries || !IsRetryable(err) {
			return "", err
		}

		delay := c.policy.Delay(attempt)
		metrics.ExtractionRetries.WithLabelValues(c.next.Provider()).Inc()
		c.log.Warn("[llm][retry] provider busy, retrying",
			zap.String("provider", c.next.Provider()),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err))
		if serr := c.sleep(ctx, delay); serr != nil {
			return "", fmt.Errorf("%w (last error: %v)", serr, err)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
