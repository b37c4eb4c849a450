package substrate

import (
	"bytes"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/contract-info/types"
)

// TrailingBytesError is returned when a value decodes successfully but leaves input unread.
type TrailingBytesError struct {
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("%d trailing bytes after decoding", e.Remaining)
}

// DecodeContractInfo decodes a SCALE encoded Contracts.ContractInfoOf value.
//
// Layout: trie_id Vec<u8>, deposit_account AccountId32, code_hash H256, storage_bytes u32,
// storage_items u32, storage_byte_deposit u128, storage_item_deposit u128,
// storage_base_deposit u128.
func DecodeContractInfo(raw []byte) (*types.ContractInfo, error) {
	var (
		trieID             gsrpctypes.Bytes
		depositAccount     [types.AccountIDLength]byte
		codeHash           gsrpctypes.Hash
		storageBytes       gsrpctypes.U32
		storageItems       gsrpctypes.U32
		storageByteDeposit gsrpctypes.U128
		storageItemDeposit gsrpctypes.U128
		storageBaseDeposit gsrpctypes.U128
	)

	fields := []struct {
		name   string
		target any
	}{
		{"trie_id", &trieID},
		{"deposit_account", &depositAccount},
		{"code_hash", &codeHash},
		{"storage_bytes", &storageBytes},
		{"storage_items", &storageItems},
		{"storage_byte_deposit", &storageByteDeposit},
		{"storage_item_deposit", &storageItemDeposit},
		{"storage_base_deposit", &storageBaseDeposit},
	}

	r := bytes.NewReader(raw)
	d := scale.NewDecoder(r)
	for _, f := range fields {
		if err := d.Decode(f.target); err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if r.Len() > 0 {
		return nil, &TrailingBytesError{Remaining: r.Len()}
	}

	account, err := types.NewAccountID(depositAccount[:])
	if err != nil {
		return nil, fmt.Errorf("deposit_account: %w", err)
	}

	return &types.ContractInfo{
		TrieID:             []byte(trieID),
		DepositAccount:     account,
		CodeHash:           common.Hash(codeHash),
		StorageBytes:       uint32(storageBytes),
		StorageItems:       uint32(storageItems),
		StorageByteDeposit: storageByteDeposit.Int,
		StorageItemDeposit: storageItemDeposit.Int,
		StorageBaseDeposit: storageBaseDeposit.Int,
	}, nil
}
