package sdk

import "context"

// ChainClient reads raw values from a node's storage at its current state.
type ChainClient interface {
	// GetStorage returns the SCALE encoded value stored under key. The bool is false when the
	// node holds no value for the key.
	GetStorage(ctx context.Context, key []byte) ([]byte, bool, error)
}
