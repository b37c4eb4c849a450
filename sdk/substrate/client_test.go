package substrate

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/contract-info/internal/testutils/substratesim"
	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
)

func Test_Dial(t *testing.T) {
	t.Parallel()

	node := substratesim.NewNode(t)

	client, err := Dial(context.Background(), node.URL())
	require.NoError(t, err)
	t.Cleanup(client.Close)

	assert.Equal(t, node.URL(), client.URL())
	assert.Equal(t, substratesim.DefaultGenesisHash, client.GenesisHash())
	assert.Equal(t, RuntimeVersion{
		SpecName:           "substrate-contracts-node",
		ImplName:           "substrate-contracts-node",
		SpecVersion:        100,
		ImplVersion:        1,
		TransactionVersion: 1,
	}, client.RuntimeVersion())
	assert.Zero(t, node.StorageCalls())
}

func Test_Dial_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// grab a free address and release it so nothing is listening there
	srv := httptest.NewServer(nil)
	url := "ws://" + strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	client, err := Dial(context.Background(), url)
	require.Nil(t, client)

	var connErr *sdkerrors.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, url, connErr.URL)
}

func Test_Dial_UnsupportedScheme(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), "ftp://localhost:9944")

	var connErr *sdkerrors.ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func Test_Dial_HandshakeFailure(t *testing.T) {
	t.Parallel()

	node := substratesim.NewNode(t)
	node.FailHandshake(errors.New("node is syncing"))

	client, err := Dial(context.Background(), node.URL())
	require.Nil(t, client)

	var connErr *sdkerrors.ConnectionError
	require.ErrorAs(t, err, &connErr)
	require.ErrorContains(t, err, "failed to fetch genesis hash: node is syncing")
}

func Test_Client_GetStorage(t *testing.T) {
	t.Parallel()

	node := substratesim.NewNode(t)
	node.SetStorage([]byte{0x01, 0x02}, []byte{0xca, 0xfe})
	node.SetStorage([]byte{0x03}, []byte{})

	// in-process transport exercises the same client code without a socket
	client, err := connect(context.Background(), rpc.DialInProc(node.Server), "inproc")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	tests := []struct {
		name      string
		key       []byte
		wantValue []byte
		wantFound bool
	}{
		{name: "present", key: []byte{0x01, 0x02}, wantValue: []byte{0xca, 0xfe}, wantFound: true},
		{name: "present but empty", key: []byte{0x03}, wantValue: []byte{}, wantFound: true},
		{name: "absent", key: []byte{0x04}, wantFound: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, found, err := client.GetStorage(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantValue, value)
			} else {
				assert.Nil(t, value)
			}
		})
	}
}

func Test_Client_GetStorage_Error(t *testing.T) {
	t.Parallel()

	node := substratesim.NewNode(t)
	node.FailStorage(errors.New("state pruned"))

	client, err := Dial(context.Background(), node.URL())
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, _, err = client.GetStorage(context.Background(), []byte{0x01})
	require.ErrorContains(t, err, "state pruned")
	assert.Equal(t, 1, node.StorageCalls())
}
