package httpclient

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// New returns a retrying HTTP client for outbound provider calls. It retries
// connection errors, 429 and 5xx responses up to retryMax times.
func New(log *zap.Logger, retryMax int, timeout time.Duration) *retryablehttp.Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 5 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = leveledZap{s: log.Sugar()}
	// Return the last response instead of a generic "giving up" error so
	// callers can read the provider's error body.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

type leveledZap struct {
	s *zap.SugaredLogger
}

var _ retryablehttp.LeveledLogger = leveledZap{}

func (l leveledZap) Error(msg string, kv ...interface{}) { l.s.Errorw("[http][client] "+msg, kv...) }
func (l leveledZap) Info(msg string, kv ...interface{})  { l.s.Debugw("[http][client] "+msg, kv...) }
func (l leveledZap) Debug(msg string, kv ...interface{}) { l.s.Debugw("[http][client] "+msg, kv...) }
func (l leveledZap) Warn(msg string, kv ...interface{})  { l.s.Warnw("[http][client] "+msg, kv...) }
