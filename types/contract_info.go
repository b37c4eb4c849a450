package types

import (
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ContractInfo is the on-chain metadata record of a deployed contract, as stored under
// Contracts.ContractInfoOf. A record is always a complete snapshot of a single storage read.
type ContractInfo struct {
	// TrieID identifies the child trie holding the contract's storage.
	TrieID []byte
	// DepositAccount holds the storage deposit on behalf of the contract.
	DepositAccount AccountID
	// CodeHash is the hash of the contract's Wasm code, shared by every instance of that code.
	CodeHash     common.Hash
	StorageBytes uint32
	StorageItems uint32

	StorageByteDeposit *big.Int
	// StorageItemDeposit is the balance reserved for the number of storage items.
	StorageItemDeposit *big.Int
	StorageBaseDeposit *big.Int
}

// ContractInfoJSON is the JSON form of ContractInfo.
//
// It only exposes the trie id, code hash and item count, deposits are not part of it.
type ContractInfoJSON struct {
	TrieID       string      `json:"trie_id"`
	CodeHash     common.Hash `json:"code_hash"`
	StorageItems uint32      `json:"storage_items"`
}

// TrieIDHex returns the trie id hex encoded without a 0x prefix.
func (c *ContractInfo) TrieIDHex() string {
	return hex.EncodeToString(c.TrieID)
}

// StorageDeposit returns the deposit reported alongside the record. A missing value reads as zero.
func (c *ContractInfo) StorageDeposit() *big.Int {
	if c.StorageItemDeposit == nil {
		return new(big.Int)
	}

	return c.StorageItemDeposit
}

// ToJSON projects the record onto its JSON form.
func (c *ContractInfo) ToJSON() ContractInfoJSON {
	return ContractInfoJSON{
		TrieID:       c.TrieIDHex(),
		CodeHash:     c.CodeHash,
		StorageItems: c.StorageItems,
	}
}
