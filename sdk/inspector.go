package sdk

import (
	"context"

	"github.com/smartcontractkit/contract-info/types"
)

// Inspector is an interface for inspecting on chain state of deployed contracts.
type Inspector interface {
	// GetContractInfo returns the metadata record of the contract at accountID, or nil when no
	// contract is deployed there.
	GetContractInfo(ctx context.Context, accountID types.AccountID) (*types.ContractInfo, error)
}
