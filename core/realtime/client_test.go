package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// echoServer upgrades every request and echoes text frames back, recording
// the bearer token it saw.
func echoServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()

	authorization := new(string)
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*authorization = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(msgType, msg); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return server, authorization
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestConnectSendAndReceive(t *testing.T) {
	server, authorization := echoServer(t)

	received := make(chan []byte, 1)
	client, err := Connect(context.Background(),
		WithURL(wsURL(server)),
		WithAPIKey("test-key"),
		WithMessageCallback(func(message []byte) { received <- message }),
	)
	if err != nil {
		t.Fatalf("expected connect to succeed, got %v", err)
	}
	defer client.Close()

	if *authorization != "Bearer test-key" {
		t.Fatalf("expected bearer auth header, got %q", *authorization)
	}

	if err := client.Send([]byte(`{"type":"response.create"}`)); err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}

	select {
	case message := <-received:
		if string(message) != `{"type":"response.create"}` {
			t.Fatalf("unexpected echoed message: %s", message)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected the echoed frame to reach the message callback")
	}
}

func TestConnectInvokesOpenCallback(t *testing.T) {
	server, _ := echoServer(t)

	opened := false
	client, err := Connect(context.Background(),
		WithURL(wsURL(server)),
		WithAPIKey("test-key"),
		WithOpenCallback(func() { opened = true }),
	)
	if err != nil {
		t.Fatalf("expected connect to succeed, got %v", err)
	}
	defer client.Close()

	if !opened {
		t.Fatalf("expected the open callback before Connect returns")
	}
}

func TestCloseStopsSendsAndReportsCleanShutdown(t *testing.T) {
	server, _ := echoServer(t)

	closed := make(chan error, 1)
	client, err := Connect(context.Background(),
		WithURL(wsURL(server)),
		WithAPIKey("test-key"),
		WithCloseCallback(func(err error) { closed <- err }),
	)
	if err != nil {
		t.Fatalf("expected connect to succeed, got %v", err)
	}

	if err := client.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("expected repeated close to be a no-op, got %v", err)
	}

	select {
	case err := <-closed:
		if err != nil {
			t.Fatalf("expected a clean shutdown, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected the close callback to fire")
	}

	if err := client.Send([]byte("late")); err == nil {
		t.Fatalf("expected send after close to fail")
	}
}

func TestConnectRequiresAPIKey(t *testing.T) {
	// Setenv registers the restore; Unsetenv makes the lookup genuinely miss.
	t.Setenv("OPENAI_API_KEY", "placeholder")
	os.Unsetenv("OPENAI_API_KEY")

	server, _ := echoServer(t)

	if _, err := Connect(context.Background(), WithURL(wsURL(server))); err == nil {
		t.Fatalf("expected connect to fail without an api key")
	}
}
