package tripay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripay-go/internal/logger"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	ProductionURL = "https://tripay.co.id/api"
	SandboxURL    = "https://tripay.co.id/api-sandbox"

	// Open payment is only served from the production host.
	OpenPaymentURL = "https://tripay.co.id/api/open-payment"

	defaultTimeout = 15 * time.Second
	defaultExpiry  = time.Hour
)

// Config holds the merchant credentials. It is copied into the client and
// never changed afterwards.
type Config struct {
	APIKey       string
	PrivateKey   string
	MerchantCode string
	Production   bool
}

// Client issues one HTTP round trip per method call. It is safe for
// concurrent use.
type Client struct {
	cfg        Config
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
	now        func() time.Time
	channels   *cache.Cache
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the client logger. Without it the client logs through the
// global logger once Init or Set has been called, and stays silent otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithChannelCache keeps the payment channel list in memory for ttl.
// A non-positive ttl leaves caching off.
func WithChannelCache(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.channels = cache.New(ttl, 2*ttl)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func New(cfg Config, opts ...Option) *Client {
	endpoint := SandboxURL
	if cfg.Production {
		endpoint = ProductionURL
	}

	c := &Client{
		cfg:      cfg,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.APIKey == "" {
		c.logFor(context.Background()).Warn("Tripay API key is empty")
	}

	return c
}

// Endpoint returns the base URL the core endpoints are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// logFor picks the logger for one call: the WithLogger logger, else the
// global one when the host has set it up, else nothing.
func (c *Client) logFor(ctx context.Context) *zap.Logger {
	if c.log != nil {
		if id := logger.RequestIDFrom(ctx); id != "" {
			return c.log.With(zap.String("request_id", id))
		}
		return c.log
	}
	if logger.Configured() {
		return logger.FromCtx(ctx)
	}
	return zap.NewNop()
}

// do performs a single request and maps the outcome onto the error taxonomy.
func (c *Client) do(ctx context.Context, operation, method, url string, body any) (*Response, error) {
	ctx, reqID := logger.EnsureRequestID(ctx)
	log := c.logFor(ctx).With(
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("url", url),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Warn("Failed to marshal Tripay request", zap.Error(err))
			return nil, &RequestSetupError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		log.Warn("Failed creating Tripay request", zap.Error(err))
		return nil, &RequestSetupError{Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Sending request to Tripay")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Tripay request failed", zap.Error(err))
		return nil, &NoResponseError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Failed to read Tripay response body", zap.Error(err))
		return nil, &NoResponseError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := newRemoteError(resp.StatusCode, bodyBytes)
		log.Warn("Tripay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("message", remote.Message),
		)
		return nil, remote
	}

	var out Response
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		log.Warn("Failed decoding Tripay response",
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w (status %d): %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	log.Debug("Tripay request completed",
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", out.Success),
		zap.Duration("duration", time.Since(start)),
	)

	return &out, nil
}
