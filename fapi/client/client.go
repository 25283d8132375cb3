// Package client implements the signed REST client for the venue's USDⓈ-M
// futures testnet. It owns request canonicalization, HMAC-SHA256 signing,
// clock-skew correction and venue error mapping. Strategies and the CLI sit
// on top of it; nothing above this package touches the wire.
package client

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/futbot/gofut/fapi/types"
	"github.com/futbot/gofut/pkg/logger"
)

const headerAPIKey = "X-MBX-APIKEY"

const (
	defaultTimeout     = 30 * time.Second
	defaultSyncTimeout = 10 * time.Second
)

// ErrMissingCredentials is returned by New when either key is absent.
// Construction fails fast so a bad configuration never reaches the wire as
// a deferred signing failure.
var ErrMissingCredentials = errors.New("api key and secret key are required")

// Options tunes the client. Zero values fall back to the testnet defaults.
type Options struct {
	BaseURL     string
	Timeout     time.Duration // signed order/account calls
	SyncTimeout time.Duration // unsigned time-sync call
}

// Client talks to the venue. One instance per process/session; the time
// offset is written once during New and only read afterwards.
type Client struct {
	apiKey      string
	secretKey   string
	baseURL     string
	http        *resty.Client
	syncTimeout time.Duration

	// timeOffset is server_time - local_time in milliseconds at the last
	// sync, 0 if the sync failed. Single writer (New), many readers.
	timeOffset int64
}

// New validates credentials, builds the HTTP layer and performs one
// best-effort time sync. A failed sync is non-fatal: the offset stays 0 and
// a warning is logged.
func New(apiKey, secretKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(secretKey) == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	syncTimeout := opts.SyncTimeout
	if syncTimeout <= 0 {
		syncTimeout = defaultSyncTimeout
	}

	rest := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", "gofut").
		SetHeader("Accept", "application/json").
		SetHeader(headerAPIKey, apiKey)

	c := &Client{
		apiKey:      apiKey,
		secretKey:   secretKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		http:        rest,
		syncTimeout: syncTimeout,
	}

	c.syncTime(context.Background())

	logger.Get().WithField("baseURL", c.baseURL).Info("futures testnet client initialized")
	return c, nil
}

// BaseURL returns the configured venue host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TimeOffset returns the clock correction in milliseconds recorded at
// construction.
func (c *Client) TimeOffset() int64 {
	return c.timeOffset
}

// syncTime fetches the venue clock and records the local skew. Any failure
// is logged and leaves the offset at 0; client construction never aborts on
// a sync error.
func (c *Client) syncTime(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.syncTimeout)
	defer cancel()

	var st types.ServerTime
	if err := c.do(ctx, "GET", EndpointTime, nil, false, &st); err != nil {
		logger.Get().WithError(err).Warn("time sync with venue failed, continuing with offset 0")
		c.timeOffset = 0
		return
	}

	local := time.Now().UnixMilli()
	c.timeOffset = st.ServerTime - local
	logger.Get().WithFields(map[string]any{
		"server": st.ServerTime,
		"local":  local,
		"offset": c.timeOffset,
	}).Debug("time sync complete")
}

// timestamp returns the current wall clock in milliseconds corrected by the
// recorded offset, recomputed per call so the correction applies freshly to
// every signed request.
func (c *Client) timestamp() int64 {
	return time.Now().UnixMilli() + c.timeOffset
}
