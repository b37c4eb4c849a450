package contractinfo

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
	"github.com/smartcontractkit/contract-info/types"
)

var testCodeHash = common.HexToHash("0x6b4e1ffa6e4bd5ac06b5ea0f8f3c4dba2f9ed8b1ce3f2f3b3a08b1b6f1fd6e3a")

func testInfo() *types.ContractInfo {
	return &types.ContractInfo{
		TrieID:             []byte{0xab, 0xcd},
		CodeHash:           testCodeHash,
		StorageBytes:       512,
		StorageItems:       3,
		StorageByteDeposit: big.NewInt(512_000),
		StorageItemDeposit: big.NewInt(2_000_000_000),
		StorageBaseDeposit: big.NewInt(1_000),
	}
}

func TestRender_HumanReadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testInfo(), types.OutputFormatHumanReadable))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"TrieId: abcd",
		"Code hash: 0x6b4e1ffa6e4bd5ac06b5ea0f8f3c4dba2f9ed8b1ce3f2f3b3a08b1b6f1fd6e3a",
		"Storage items: 3",
		"Storage deposit: 2000000000",
	}, lines)
}

func TestRender_HumanReadable_LabelOrder(t *testing.T) {
	t.Parallel()

	infos := []*types.ContractInfo{
		{},
		{TrieID: []byte{0x00}, StorageItems: 0, StorageItemDeposit: big.NewInt(0)},
		testInfo(),
	}

	for _, info := range infos {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, info, types.OutputFormatHumanReadable))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		for i, label := range []string{"TrieId:", "Code hash:", "Storage items:", "Storage deposit:"} {
			assert.True(t, strings.HasPrefix(lines[i], label+" "), "line %d: %q", i, lines[i])
		}
	}
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testInfo(), types.OutputFormatJSON))

	assert.Equal(t, `{
  "trie_id": "abcd",
  "code_hash": "0x6b4e1ffa6e4bd5ac06b5ea0f8f3c4dba2f9ed8b1ce3f2f3b3a08b1b6f1fd6e3a",
  "storage_items": 3
}
`, buf.String())

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Len(t, fields, 3)
	for key := range fields {
		assert.NotContains(t, strings.ToLower(key), "deposit")
	}

	trieID, err := hex.DecodeString(fields["trie_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, testInfo().TrieID, trieID)
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, testInfo(), types.OutputFormat(9))
	require.EqualError(t, err, "unsupported output format: OutputFormat(9)")
	assert.Zero(t, buf.Len())
}

//nolint:paralleltest // swaps the package level marshaller
func TestRender_JSON_SerializationError(t *testing.T) {
	orig := marshalIndent
	t.Cleanup(func() { marshalIndent = orig })
	marshalIndent = func(any, string, string) ([]byte, error) {
		return nil, errors.New("unsupported value")
	}

	var buf bytes.Buffer
	err := Render(&buf, testInfo(), types.OutputFormatJSON)

	var serErr *sdkerrors.SerializationError
	require.ErrorAs(t, err, &serErr)
	require.EqualError(t, err, "failed to serialize contract info as json: unsupported value")
	assert.Zero(t, buf.Len())
}
