package chainclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/clients/client"
	"github.com/stakegov/governance-engine/internal/config"
)

const tipHeightEndpoint = "/v1/chain/tip"

const (
	defaultMaxRetryTimes = 3
	defaultRetryInterval = 500 * time.Millisecond
	defaultTimeout       = 20 * time.Second
)

type ChainClient struct {
	httpClient *http.Client
	cfg        *config.ChainConfig
}

func NewChainClient(cfg *config.ChainConfig) *ChainClient {
	return &ChainClient{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *ChainClient) GetBaseURL() string {
	return c.cfg.URL
}

func (c *ChainClient) GetDefaultRequestTimeout() time.Duration {
	if c.cfg.Timeout > 0 {
		return c.cfg.Timeout
	}
	return defaultTimeout
}

func (c *ChainClient) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *ChainClient) GetTipHeight(ctx context.Context) (uint64, error) {
	type empty struct{}
	type tipResponse struct {
		Height uint64 `json:"height"`
	}

	callTip := func() (*tipResponse, error) {
		opts := &client.HttpClientOptions{
			Path: tipHeightEndpoint,
		}
		return client.SendRequest[empty, tipResponse](ctx, c, http.MethodGet, opts, nil)
	}

	maxRetryTimes := c.cfg.MaxRetryTimes
	if maxRetryTimes == 0 {
		maxRetryTimes = defaultMaxRetryTimes
	}
	retryInterval := c.cfg.RetryInterval
	if retryInterval == 0 {
		retryInterval = defaultRetryInterval
	}

	resp, err := retry.DoWithData(callTip,
		retry.Context(ctx),
		retry.Attempts(maxRetryTimes),
		retry.Delay(retryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", maxRetryTimes).
				Err(err).
				Msg("retrying chain tip call")
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain tip height: %w", err)
	}

	return resp.Height, nil
}
