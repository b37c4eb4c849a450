package substrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/smartcontractkit/contract-info/sdk"
	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
)

var _ sdk.ChainClient = (*Client)(nil)

// RuntimeVersion is the runtime version reported by state_getRuntimeVersion.
type RuntimeVersion struct {
	SpecName           string `json:"specName"`
	ImplName           string `json:"implName"`
	SpecVersion        uint32 `json:"specVersion"`
	ImplVersion        uint32 `json:"implVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

// Client is a session with a Substrate node's JSON-RPC endpoint.
type Client struct {
	rpc            *rpc.Client
	url            string
	genesisHash    common.Hash
	runtimeVersion RuntimeVersion
}

// Dial connects to the node at url (ws, wss, http or https) and performs the session handshake.
//
// Failures are returned as *sdkerrors.ConnectionError and are never retried.
func Dial(ctx context.Context, url string) (*Client, error) {
	rc, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, sdkerrors.NewConnectionError(url, err)
	}

	return connect(ctx, rc, url)
}

func connect(ctx context.Context, rc *rpc.Client, url string) (*Client, error) {
	c := &Client{rpc: rc, url: url}
	if err := c.handshake(ctx); err != nil {
		rc.Close()
		return nil, sdkerrors.NewConnectionError(url, err)
	}

	return c, nil
}

func (c *Client) handshake(ctx context.Context) error {
	var genesis *common.Hash
	if err := c.rpc.CallContext(ctx, &genesis, "chain_getBlockHash", 0); err != nil {
		return fmt.Errorf("failed to fetch genesis hash: %w", err)
	}
	if genesis == nil {
		return errors.New("node did not report a genesis hash")
	}
	c.genesisHash = *genesis

	if err := c.rpc.CallContext(ctx, &c.runtimeVersion, "state_getRuntimeVersion"); err != nil {
		return fmt.Errorf("failed to fetch runtime version: %w", err)
	}

	return nil
}

// URL returns the endpoint the client is connected to.
func (c *Client) URL() string {
	return c.url
}

// GenesisHash returns the hash of block 0 reported during the handshake.
func (c *Client) GenesisHash() common.Hash {
	return c.genesisHash
}

// RuntimeVersion returns the runtime version reported during the handshake.
func (c *Client) RuntimeVersion() RuntimeVersion {
	return c.runtimeVersion
}

// GetStorage reads key from the node's latest state with state_getStorage.
func (c *Client) GetStorage(ctx context.Context, key []byte) ([]byte, bool, error) {
	var raw *hexutil.Bytes
	if err := c.rpc.CallContext(ctx, &raw, "state_getStorage", hexutil.Bytes(key)); err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}

	return *raw, true, nil
}

// Close ends the session.
func (c *Client) Close() {
	c.rpc.Close()
}
