package contractinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
	"github.com/smartcontractkit/contract-info/types"
)

// marshalIndent is swapped in tests to exercise serialization failures.
var marshalIndent = json.MarshalIndent

// Render writes info to w in the given format.
//
// Output is fully produced before anything is written, so a failed render writes nothing.
func Render(w io.Writer, info *types.ContractInfo, format types.OutputFormat) error {
	var out []byte
	switch format {
	case types.OutputFormatHumanReadable:
		out = renderHumanReadable(info)
	case types.OutputFormatJSON:
		var err error
		if out, err = renderJSON(info); err != nil {
			return sdkerrors.NewSerializationError(format, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	_, err := w.Write(out)

	return err
}

func renderHumanReadable(info *types.ContractInfo) []byte {
	fields := []struct {
		name  string
		value string
	}{
		{"TrieId:", info.TrieIDHex()},
		{"Code hash:", info.CodeHash.Hex()},
		{"Storage items:", strconv.FormatUint(uint64(info.StorageItems), 10)},
		{"Storage deposit:", info.StorageDeposit().String()},
	}

	var buf bytes.Buffer
	for _, f := range fields {
		fmt.Fprintf(&buf, "%s %s\n", f.name, f.value)
	}

	return buf.Bytes()
}

func renderJSON(info *types.ContractInfo) ([]byte, error) {
	out, err := marshalIndent(info.ToJSON(), "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}
