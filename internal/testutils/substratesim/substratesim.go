// package substratesim implements a simulated Substrate node JSON-RPC endpoint for testing purposes.
package substratesim

import (
	"errors"
	"math/big"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/contract-info/types"
)

// DefaultGenesisHash is the genesis hash reported by a simulated node.
var DefaultGenesisHash = common.HexToHash("0x0bc7a1b7f1f0a3c1e3c1c1f3cbb7c2b9f5e2a3d4c5b6a7980f1e2d3c4b5a6978")

// RuntimeVersion is the subset of state_getRuntimeVersion served by the simulated node.
type RuntimeVersion struct {
	SpecName           string `json:"specName"`
	ImplName           string `json:"implName"`
	SpecVersion        uint32 `json:"specVersion"`
	ImplVersion        uint32 `json:"implVersion"`
	TransactionVersion uint32 `json:"transactionVersion"`
}

// Node is an in-process node exposing chain_getBlockHash, state_getRuntimeVersion and
// state_getStorage over websocket.
type Node struct {
	Server *rpc.Server

	http *httptest.Server

	mu           sync.Mutex
	storage      map[string][]byte
	storageCalls int
	storageErr   error
	handshakeErr error
}

// NewNode starts a simulated node. It is stopped when the test finishes.
func NewNode(t *testing.T) *Node {
	t.Helper()

	n := &Node{
		Server:  rpc.NewServer(),
		storage: make(map[string][]byte),
	}
	require.NoError(t, n.Server.RegisterName("chain", &chainAPI{node: n}))
	require.NoError(t, n.Server.RegisterName("state", &stateAPI{node: n}))

	n.http = httptest.NewServer(n.Server.WebsocketHandler([]string{"*"}))
	t.Cleanup(func() {
		n.http.Close()
		n.Server.Stop()
	})

	return n
}

// URL returns the websocket endpoint of the node.
func (n *Node) URL() string {
	return "ws://" + strings.TrimPrefix(n.http.URL, "http://")
}

// SetStorage stores value under key.
func (n *Node) SetStorage(key, value []byte) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.storage[hexutil.Encode(key)] = value
}

// FailStorage makes every storage query return err.
func (n *Node) FailStorage(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.storageErr = err
}

// FailHandshake makes the genesis hash query return err.
func (n *Node) FailHandshake(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.handshakeErr = err
}

// StorageCalls returns how many storage queries the node has served.
func (n *Node) StorageCalls() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.storageCalls
}

// contractInfoOf mirrors the storage layout of a ContractInfoOf value.
type contractInfoOf struct {
	TrieID             gsrpctypes.Bytes
	DepositAccount     [types.AccountIDLength]byte
	CodeHash           gsrpctypes.Hash
	StorageBytes       gsrpctypes.U32
	StorageItems       gsrpctypes.U32
	StorageByteDeposit gsrpctypes.U128
	StorageItemDeposit gsrpctypes.U128
	StorageBaseDeposit gsrpctypes.U128
}

// EncodeContractInfo encodes a record the way pallet-contracts stores ContractInfoOf values.
// Nil deposits encode as zero. It panics if the record cannot be encoded.
func EncodeContractInfo(info *types.ContractInfo) []byte {
	var depositAccount [types.AccountIDLength]byte
	copy(depositAccount[:], info.DepositAccount.Bytes())

	out, err := codec.Encode(contractInfoOf{
		TrieID:             gsrpctypes.NewBytes(info.TrieID),
		DepositAccount:     depositAccount,
		CodeHash:           gsrpctypes.Hash(info.CodeHash),
		StorageBytes:       gsrpctypes.NewU32(info.StorageBytes),
		StorageItems:       gsrpctypes.NewU32(info.StorageItems),
		StorageByteDeposit: u128(info.StorageByteDeposit),
		StorageItemDeposit: u128(info.StorageItemDeposit),
		StorageBaseDeposit: u128(info.StorageBaseDeposit),
	})
	if err != nil {
		panic(err)
	}

	return out
}

func u128(v *big.Int) gsrpctypes.U128 {
	if v == nil {
		return gsrpctypes.NewU128(*big.NewInt(0))
	}

	return gsrpctypes.NewU128(*v)
}

type chainAPI struct {
	node *Node
}

// GetBlockHash serves chain_getBlockHash. Only the genesis block is known.
func (a *chainAPI) GetBlockHash(number *uint64) (*common.Hash, error) {
	a.node.mu.Lock()
	defer a.node.mu.Unlock()

	if a.node.handshakeErr != nil {
		return nil, a.node.handshakeErr
	}
	if number == nil || *number != 0 {
		return nil, errors.New("only the genesis block is available")
	}
	h := DefaultGenesisHash

	return &h, nil
}

type stateAPI struct {
	node *Node
}

// GetRuntimeVersion serves state_getRuntimeVersion.
func (a *stateAPI) GetRuntimeVersion() RuntimeVersion {
	return RuntimeVersion{
		SpecName:           "substrate-contracts-node",
		ImplName:           "substrate-contracts-node",
		SpecVersion:        100,
		ImplVersion:        1,
		TransactionVersion: 1,
	}
}

// GetStorage serves state_getStorage at the latest state.
func (a *stateAPI) GetStorage(key hexutil.Bytes) (*hexutil.Bytes, error) {
	a.node.mu.Lock()
	defer a.node.mu.Unlock()

	a.node.storageCalls++
	if a.node.storageErr != nil {
		return nil, a.node.storageErr
	}

	value, ok := a.node.storage[hexutil.Encode(key)]
	if !ok {
		return nil, nil
	}
	out := hexutil.Bytes(value)

	return &out, nil
}
