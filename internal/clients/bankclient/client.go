package bankclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/clients/client"
	"github.com/stakegov/governance-engine/internal/config"
)

const transferEndpoint = "/v1/transfers"

const (
	defaultMaxRetryTimes = 3
	defaultRetryInterval = 500 * time.Millisecond
	defaultTimeout       = 15 * time.Second
)

type BankClient struct {
	httpClient *http.Client
	cfg        *config.BankConfig
}

func NewBankClient(cfg *config.BankConfig) *BankClient {
	return &BankClient{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *BankClient) GetBaseURL() string {
	return c.cfg.URL
}

func (c *BankClient) GetDefaultRequestTimeout() time.Duration {
	if c.cfg.Timeout > 0 {
		return c.cfg.Timeout
	}
	return defaultTimeout
}

func (c *BankClient) GetHttpClient() *http.Client {
	return c.httpClient
}

// Transfer moves amount from the staker's account into custody. The bank
// applies the transfer atomically; any error here means no funds moved.
func (c *BankClient) Transfer(ctx context.Context, from, to string, amount uint64) error {
	type transferRequest struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount uint64 `json:"amount"`
	}
	type transferResponse struct {
		TransferID string `json:"transfer_id"`
	}

	callTransfer := func() (*transferResponse, error) {
		opts := &client.HttpClientOptions{
			Path: transferEndpoint,
		}
		input := &transferRequest{
			From:   from,
			To:     to,
			Amount: amount,
		}
		return client.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, input)
	}

	resp, err := clientCallWithRetry(ctx, callTransfer, c.cfg)
	if err != nil {
		return fmt.Errorf("failed to transfer %d from %s: %w", amount, from, err)
	}

	log.Ctx(ctx).Debug().
		Str("transfer_id", resp.TransferID).
		Str("from", from).
		Uint64("amount", amount).
		Msg("bank transfer settled")

	return nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.BankConfig,
) (T, error) {
	maxRetryTimes := cfg.MaxRetryTimes
	if maxRetryTimes == 0 {
		maxRetryTimes = defaultMaxRetryTimes
	}
	retryInterval := cfg.RetryInterval
	if retryInterval == 0 {
		retryInterval = defaultRetryInterval
	}

	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(maxRetryTimes),
		retry.Delay(retryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// A settled (or rejected) transfer must not be resubmitted, so only
			// transport-level failures without a response are retried.
			var respErr *client.HttpResponseError
			return err != nil && !errors.As(err, &respErr)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", maxRetryTimes).
				Err(err).
				Msg("retrying bank call")
		}),
	)
}
