package history

import "fmt"

// ProviderError wraps a failure of the standard provider, such as not
// being able to resolve the head block before the log query runs.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// RpcError carries a non-empty error field of a JSON-RPC response, as-is.
type RpcError struct {
	Message string
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error: %s", e.Message)
}

// ParseError reports a malformed JSON-RPC response; Message is the
// parser's own message.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}
