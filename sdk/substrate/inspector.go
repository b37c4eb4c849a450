package substrate

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/contract-info/sdk"
	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
	"github.com/smartcontractkit/contract-info/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for Substrate chains running pallet-contracts.
type Inspector struct {
	client sdk.ChainClient
}

// NewInspector creates a new Inspector reading through client.
func NewInspector(client sdk.ChainClient) *Inspector {
	return &Inspector{client: client}
}

// GetContractInfo reads Contracts.ContractInfoOf for accountID at the node's current state.
//
// A missing entry returns (nil, nil). The query is issued once.
func (i *Inspector) GetContractInfo(ctx context.Context, accountID types.AccountID) (*types.ContractInfo, error) {
	key := ContractInfoOfKey(accountID)
	sdk.LoggerFrom(ctx).Debugf("Fetching %s.%s storage key %s", ContractsPallet, ContractInfoOfItem, key.Hex())

	raw, ok, err := i.client.GetStorage(ctx, key)
	if err != nil {
		return nil, sdkerrors.NewFetchError(accountID, err)
	}
	if !ok {
		return nil, nil
	}

	info, err := DecodeContractInfo(raw)
	if err != nil {
		return nil, sdkerrors.NewFetchError(accountID, fmt.Errorf("failed to decode contract info: %w", err))
	}

	return info, nil
}
