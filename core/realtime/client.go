// Package realtime connects the event pipeline to a realtime voice session
// over a websocket. It owns the socket lifecycle and hands every inbound
// frame to a caller-provided handler; interpretation happens upstream.
package realtime

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	defaultHost  = "api.openai.com"
	defaultPath  = "/v1/realtime"
	defaultModel = "gpt-4o-realtime-preview"
)

// Client is a realtime session transport. Its Send method satisfies the
// pipeline's outbound transport contract; inbound frames arrive through the
// message callback on a dedicated read goroutine.
type Client struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	options connectionOptions

	closed   bool
	closedMu sync.Mutex
}

type connectionOptions struct {
	apiKey string
	model  string
	url    string

	messageCallback func([]byte)
	openCallback    func()
	closeCallback   func(error)
}

// Option configures a realtime client before it connects.
type Option func(*connectionOptions)

// WithAPIKey overrides the OPENAI_API_KEY environment lookup.
func WithAPIKey(apiKey string) Option {
	return func(o *connectionOptions) { o.apiKey = apiKey }
}

// WithModel selects the realtime model to attach the session to.
func WithModel(model string) Option {
	return func(o *connectionOptions) { o.model = model }
}

// WithURL replaces the default endpoint entirely, query string included.
func WithURL(rawURL string) Option {
	return func(o *connectionOptions) { o.url = rawURL }
}

// WithMessageCallback registers the handler invoked for every inbound frame.
func WithMessageCallback(callback func([]byte)) Option {
	return func(o *connectionOptions) { o.messageCallback = callback }
}

// WithOpenCallback registers a hook invoked once the socket is connected.
func WithOpenCallback(callback func()) Option {
	return func(o *connectionOptions) { o.openCallback = callback }
}

// WithCloseCallback registers a hook invoked when the read loop ends. The
// error is nil on a clean close.
func WithCloseCallback(callback func(error)) Option {
	return func(o *connectionOptions) { o.closeCallback = callback }
}

// Connect dials the realtime endpoint and starts the read loop.
func Connect(ctx context.Context, opts ...Option) (*Client, error) {
	ctx, span := tracer.Start(ctx, "realtime.Connect")
	defer span.End()

	client := &Client{
		options: connectionOptions{
			model:           defaultModel,
			messageCallback: func([]byte) {},
			openCallback:    func() {},
			closeCallback:   func(error) {},
		},
	}
	for _, opt := range opts {
		opt(&client.options)
	}

	conn, err := connectWebsocket(ctx, client.options)
	if err != nil {
		return nil, fmt.Errorf("failed to open websocket: %w", err)
	}

	client.conn = conn
	client.options.openCallback()
	go client.readAndProcessMessages()

	return client, nil
}

func connectWebsocket(ctx context.Context, options connectionOptions) (*websocket.Conn, error) {
	apiKey := options.apiKey
	if apiKey == "" {
		var ok bool
		if apiKey, ok = os.LookupEnv("OPENAI_API_KEY"); !ok {
			return nil, fmt.Errorf("openai api key not found")
		}
	}

	endpoint := options.url
	if endpoint == "" {
		urlValues := url.Values{}
		urlValues.Set("model", options.model)
		endpoint = (&url.URL{
			Scheme:   "wss",
			Host:     defaultHost,
			Path:     defaultPath,
			RawQuery: urlValues.Encode(),
		}).String()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, http.Header{
		"Authorization": {"Bearer " + apiKey},
		"OpenAI-Beta":   {"realtime=v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to realtime endpoint: %w", err)
	}

	return conn, nil
}

func (c *Client) readAndProcessMessages() {
	for {
		msgType, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) || c.isClosed() {
				c.options.closeCallback(nil)
			} else {
				logger.Error("Websocket read error", "error", err)
				c.options.closeCallback(err)
			}
			return
		}

		switch msgType {
		case websocket.TextMessage, websocket.BinaryMessage:
			c.options.messageCallback(msg)
		default:
		}
	}
}

// Send writes one message frame to the session socket.
func (c *Client) Send(message []byte) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil || c.isClosed() {
		return fmt.Errorf("websocket connection closed")
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write to realtime endpoint: %w", err)
	}
	return nil
}

// Close sends a close frame and tears down the connection. Subsequent Send
// calls fail.
func (c *Client) Close() error {
	c.closedMu.Lock()
	if c.closed {
		c.closedMu.Unlock()
		return nil
	}
	c.closed = true
	c.closedMu.Unlock()

	c.connMu.Lock()
	defer c.connMu.Unlock()

	err := c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if closeErr := c.conn.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to close websocket: %w", err)
	}
	return nil
}

func (c *Client) isClosed() bool {
	c.closedMu.Lock()
	defer c.closedMu.Unlock()
	return c.closed
}
