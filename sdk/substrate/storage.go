package substrate

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/contract-info/types"
)

const (
	// ContractsPallet is the storage prefix of pallet-contracts.
	ContractsPallet = "Contracts"
	// ContractInfoOfItem is the storage map holding contract metadata keyed by account id.
	ContractInfoOfItem = "ContractInfoOf"
)

// StorageKey is a raw key into a node's state trie.
type StorageKey []byte

// Hex returns the 0x-prefixed hex encoding of the key.
func (k StorageKey) Hex() string {
	return hexutil.Encode(k)
}

// Twox64 returns the 8 byte xxHash64 (seed 0) of data, little-endian.
func Twox64(data []byte) []byte {
	return binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(data))
}

// Twox128 returns the concatenated xxHash64 digests of data with seeds 0 and 1.
func Twox128(data []byte) []byte {
	out := Twox64(data)

	h := xxhash.NewWithSeed(1)
	_, _ = h.Write(data)

	return binary.LittleEndian.AppendUint64(out, h.Sum64())
}

// Twox64Concat hashes data with Twox64 and appends data itself, so map keys stay enumerable.
func Twox64Concat(data []byte) []byte {
	return append(Twox64(data), data...)
}

// StoragePrefix returns the key prefix shared by every entry of a pallet storage item.
func StoragePrefix(pallet, item string) StorageKey {
	return append(Twox128([]byte(pallet)), Twox128([]byte(item))...)
}

// ContractInfoOfKey builds the key of the Contracts.ContractInfoOf entry for accountID.
func ContractInfoOfKey(accountID types.AccountID) StorageKey {
	return append(StoragePrefix(ContractsPallet, ContractInfoOfItem), Twox64Concat(accountID.Bytes())...)
}
