// Package ordering submits confirmed voice orders to the restaurant order
// service over HTTP.
package ordering

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/voxtable/voiceorder-core/core/cart"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const submitPath = "/api/orders"

// Order is one confirmed order ready for submission.
type Order struct {
	RestaurantID string        `json:"restaurantId"`
	Cart         cart.Snapshot `json:"cart"`
	Source       string        `json:"source"`
}

// Receipt is the order service's acknowledgement of a submitted order.
type Receipt struct {
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
}

// Client talks to the order service.
type Client struct {
	baseURL string
	apiKey  string

	httpClient *http.Client
}

// ClientOption configures an order service client.
type ClientOption func(*Client)

// WithAPIKey attaches a bearer token to every request.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) { c.apiKey = apiKey }
}

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates an order service client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		)},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Submit posts the order and returns the service's receipt. Orders are always
// tagged as voice orders on the wire.
func (c *Client) Submit(ctx context.Context, order Order) (*Receipt, error) {
	ctx, span := tracer.Start(ctx, "submit order")
	defer span.End()
	span.SetAttributes(
		attribute.String("request.restaurant_id", order.RestaurantID),
		attribute.Int("request.item_count", order.Cart.ItemCount()),
	)

	if order.Source == "" {
		order.Source = "voice"
	}

	requestBodyBytes, err := json.Marshal(order)
	if err != nil {
		err = fmt.Errorf("error marshalling JSON: %w", err)
		span.RecordError(err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+submitPath, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if errorBody, readErr := io.ReadAll(resp.Body); readErr == nil {
			span.SetAttributes(attribute.String("response.error", string(errorBody)))
		}
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		span.RecordError(err)
		logger.Error("Order submission rejected", "status", resp.Status)
		return nil, err
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		err = fmt.Errorf("error unmarshalling JSON: %w", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("response.order_number", receipt.OrderNumber))
	return &receipt, nil
}
