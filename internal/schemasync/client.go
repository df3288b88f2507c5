package schemasync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Querier runs one SQL statement on the remote database.
type Querier interface {
	Query(ctx context.Context, sql string) ([]erpbrain.Row, error)
}

// ClientConfig configures the query service client.
type ClientConfig struct {
	// Endpoint is the service base URL; "/query" is appended.
	Endpoint string

	// APIKey is sent as the x-api-key header.
	APIKey string

	// Timeout bounds one call. Zero means erpbrain.DefaultQueryTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the HTTP query service.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	logger     erpbrain.Logger
}

// NewClient validates cfg and creates a Client.
// Panics if logger is nil.
func NewClient(cfg ClientConfig, logger erpbrain.Logger) (*Client, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("%w: query service endpoint is not set", erpbrain.ErrInvalidConfig)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: query service API key is not set", erpbrain.ErrInvalidConfig)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = erpbrain.DefaultQueryTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		url:        strings.TrimRight(cfg.Endpoint, "/") + "/query",
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// Query posts sql to the service and decodes the returned rows. Numbers
// keep their textual form (json.Number) so they are written back unchanged.
func (c *Client) Query(ctx context.Context, sql string) ([]erpbrain.Row, error) {
	rows, err := c.do(ctx, sql)
	if err != nil {
		c.logger.Error("Query failed: %v", err)
		var qe *erpbrain.QueryError
		if errors.As(err, &qe) {
			c.logger.Error("Response: %s", qe.Body)
		}
	}
	return rows, err
}

func (c *Client) do(ctx context.Context, sql string) ([]erpbrain.Row, error) {
	payload, err := json.Marshal(map[string]string{"sql": sql})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", erpbrain.ErrQueryFailed, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", erpbrain.ErrQueryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &erpbrain.QueryError{
			Status: resp.StatusCode,
			Body:   erpbrain.Truncate(string(body), erpbrain.MaxErrorPreviewLength),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var rows []erpbrain.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", erpbrain.ErrQueryFailed, err)
	}
	if rows == nil {
		rows = []erpbrain.Row{}
	}
	return rows, nil
}
