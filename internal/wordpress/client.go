// Package wordpress is the remote content gateway: it reads the same
// entity shapes the local repositories serve from a WordPress GraphQL
// endpoint instead of the storage slots.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"studio/internal/observability"
)

// Client issues GraphQL queries against one configured endpoint.
// There is no retry or backoff; transport and schema errors propagate
// to the caller.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a gateway client for the endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// Request posts {query, variables} and returns the raw data payload.
// A GraphQL errors array is treated as a failure even on HTTP 200.
func (c *Client) Request(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		observability.GatewayRequestsTotal.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("gateway request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		observability.GatewayRequestsTotal.WithLabelValues("http_error").Inc()
		return nil, fmt.Errorf("gateway request: unexpected status %d", res.StatusCode)
	}

	var decoded graphqlResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		observability.GatewayRequestsTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		observability.GatewayRequestsTotal.WithLabelValues("graphql_error").Inc()
		return nil, fmt.Errorf("graphql error: %s", decoded.Errors[0].Message)
	}

	observability.GatewayRequestsTotal.WithLabelValues("ok").Inc()
	return decoded.Data, nil
}
