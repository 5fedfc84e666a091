package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrRequestRejected error = errors.New("faucet request rejected")

const requestTimeout = 30 * time.Second

type fundRequest struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// Client asks the Chainlink faucet to fund a test-network address.
type Client struct {
	logs       *zap.SugaredLogger
	httpClient *http.Client
	baseURL    string
}

func NewClient(logger *zap.SugaredLogger, baseURL string) *Client {
	return &Client{
		logs: logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
	}
}

// Request submits a funding request for the address on the given test
// network. Any non-200 response counts as a rejection.
func (c *Client) Request(ctx context.Context, address string, network string) error {
	body, err := json.Marshal(fundRequest{
		Address: address,
		Network: network,
	})
	if err != nil {
		return fmt.Errorf("marshal faucet request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, network)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create faucet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logs.Errorw("faucet request failed", "error", err, "network", network)
		return fmt.Errorf("send faucet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logs.Errorw("faucet rejected funding request", "status", resp.StatusCode, "network", network, "address", address)
		return fmt.Errorf("%w: status %d", ErrRequestRejected, resp.StatusCode)
	}

	c.logs.Infow("faucet funding requested", "network", network, "address", address)
	return nil
}
