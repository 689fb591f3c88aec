package history

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// logEntry is a raw Transfer log as returned by eth_getLogs.
type logEntry struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     string   `json:"blockNumber"`
	TransactionHash string   `json:"transactionHash"`
	LogIndex        string   `json:"logIndex"`
}

type logsResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  []logEntry      `json:"result"`
	Error   json.RawMessage `json:"error"`
}

type rpcErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// decodeLogsResponse parses a raw JSON-RPC response into its log entries.
// Responses carrying a non-empty error field fail with RpcError; malformed
// JSON fails with ParseError wrapping the parser's message.
//
// Special case, kept for endpoint compatibility: some endpoints send an
// error field holding the empty string on success. An empty-string error
// is NOT an error; the result array is used as-is.
func decodeLogsResponse(raw []byte) ([]logEntry, error) {
	var resp logsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	if msg, ok := responseError(resp.Error); ok {
		return nil, &RpcError{Message: msg}
	}
	return resp.Result, nil
}

func responseError(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", false
		}
		return s, true
	}
	var obj rpcErrorObject
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return fmt.Sprintf("%s (code %d)", obj.Message, obj.Code), true
	}
	return string(raw), true
}
