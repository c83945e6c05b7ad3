package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "dealdesk/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIsRetryable(t *testing.T) {
	retryable := []string{
		"Model is under HIGH   demand",
		"prediction failed: e003",
		"Service Unavailable",
		"request throttled",
		"Please try again later",
		"status 503",
		"status 502",
	}
	for _, msg := range retryable {
		assert.True(t, IsRetryable(errors.New(msg)), msg)
	}
	for _, msg := range []string{"invalid api token", "status 500", "status 400"} {
		assert.False(t, IsRetryable(errors.New(msg)), msg)
	}
	assert.False(t, IsRetryable(nil))
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 2*time.Second, p.Delay(0))
	assert.Equal(t, 4*time.Second, p.Delay(1))
	assert.Equal(t, 8*time.Second, p.Delay(2))
}

func newRetrying(t *testing.T, maxRetries int) (*RetryingClient, *mock_interfaces.MockILLMClient, *[]time.Duration) {
	t.Helper()
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockILLMClient(ctrl)
	next.EXPECT().Provider().Return("replicate").AnyTimes()

	c := WithRetry(next, RetryPolicy{MaxRetries: maxRetries, InitialDelay: 2 * time.Second, BackoffMultiplier: 2}, nil)
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, next, &slept
}

func TestRetryingClient_Complete(t *testing.T) {
	t.Run("succeeds after capacity errors", func(t *testing.T) {
		c, next, slept := newRetrying(t, 3)
		gomock.InOrder(
			next.EXPECT().Complete(gomock.Any(), "sys", "p").Return("", errors.New("E003 high demand")),
			next.EXPECT().Complete(gomock.Any(), "sys", "p").Return("", errors.New("503")),
			next.EXPECT().Complete(gomock.Any(), "sys", "p").Return("{}", nil),
		)

		out, err := c.Complete(context.Background(), "sys", "p")
		if err != nil || out != "{}" {
			t.Fatalf("unexpected result: %q, %v", out, err)
		}
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *slept)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		c, next, slept := newRetrying(t, 3)
		next.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("unavailable")).Times(4)

		_, err := c.Complete(context.Background(), "sys", "p")
		if err == nil || err.Error() != "unavailable" {
			t.Fatalf("expected last error, got %v", err)
		}
		assert.Len(t, *slept, 3)
	})

	t.Run("non-retryable fails fast", func(t *testing.T) {
		c, next, slept := newRetrying(t, 3)
		next.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("invalid token")).Times(1)

		if _, err := c.Complete(context.Background(), "sys", "p"); err == nil {
			t.Fatalf("expected error")
		}
		assert.Empty(t, *slept)
	})

	t.Run("context cancelled while waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mock_interfaces.NewMockILLMClient(ctrl)
		next.EXPECT().Provider().Return("replicate").AnyTimes()
		next.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("throttled")).Times(1)
		c := WithRetry(next, RetryPolicy{MaxRetries: 3, InitialDelay: time.Hour, BackoffMultiplier: 2}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Complete(ctx, "sys", "p")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
