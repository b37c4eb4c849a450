// Package contractinfo retrieves the metadata of a pallet-contracts smart contract from a
// Substrate node and renders it for display.
package contractinfo

import (
	"context"
	"fmt"
	"io"

	"github.com/smartcontractkit/contract-info/sdk"
	sdkerrors "github.com/smartcontractkit/contract-info/sdk/errors"
	"github.com/smartcontractkit/contract-info/sdk/substrate"
	"github.com/smartcontractkit/contract-info/types"
)

// Run connects to the node at cfg.URL, fetches the metadata of cfg.Contract and renders it to w.
//
// Errors are *sdkerrors.ConnectionError, *sdkerrors.FetchError,
// *sdkerrors.ContractInfoNotFoundError or *sdkerrors.SerializationError. Nothing is written to w
// unless the record was found and rendered.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sdk.LoggerFrom(ctx).Debugf("Getting contract information for AccountId %s", cfg.Contract)

	client, err := substrate.Dial(ctx, cfg.URL)
	if err != nil {
		return err
	}
	defer client.Close()

	runtime := client.RuntimeVersion()
	sdk.LoggerFrom(ctx).Infof("Connected to %s (genesis %s, runtime %s v%d)",
		client.URL(), client.GenesisHash().Hex(), runtime.SpecName, runtime.SpecVersion)

	return Show(ctx, substrate.NewInspector(client), cfg.Contract, cfg.Output, w)
}

// Show fetches the metadata of accountID through inspector and renders it to w.
func Show(ctx context.Context, inspector sdk.Inspector, accountID types.AccountID, format types.OutputFormat, w io.Writer) error {
	info, err := inspector.GetContractInfo(ctx, accountID)
	if err != nil {
		return err
	}
	if info == nil {
		return sdkerrors.NewContractInfoNotFoundError(accountID)
	}

	return Render(w, info, format)
}
