package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/walletkit-dev/walletkit/configs"
)

// Transport is a raw JSON-RPC submission channel. Log queries bypass the
// normal provider because the untrusted endpoints the wallet ships against
// do not accept eth_getLogs on the standard channel.
type Transport interface {
	Post(ctx context.Context, body []byte) ([]byte, error)
}

// maxResponseBytes caps how much of a response body is read. Log queries
// against busy wallets return large result sets, but never this large.
const maxResponseBytes = 16 << 20

type HTTPTransport struct {
	url      string
	client   *http.Client
	maxBytes int64
}

func NewHTTPTransport(url string) *HTTPTransport {
	return &HTTPTransport{
		url:      url,
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: maxResponseBytes,
	}
}

// NewLogsTransport builds the transport for the configured logs endpoint,
// falling back to the main RPC URL when none is set.
func NewLogsTransport() *HTTPTransport {
	url := config.Cfg.RPC.LogsURL
	if url == "" {
		url = config.Cfg.RPC.URL
	}
	return NewHTTPTransport(url)
}

func (t *HTTPTransport) Post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, t.url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > t.maxBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", t.url, t.maxBytes)
	}
	return data, nil
}
