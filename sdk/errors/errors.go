package sdkerrors

import (
	"fmt"

	"github.com/smartcontractkit/contract-info/types"
)

// ConnectionError is returned when a session with the node cannot be established.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to node at %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(url string, err error) *ConnectionError {
	return &ConnectionError{URL: url, Err: err}
}

// FetchError is returned when the storage query fails or its result cannot be decoded.
type FetchError struct {
	AccountID types.AccountID
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch contract info for account id %s: %v", e.AccountID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(accountID types.AccountID, err error) *FetchError {
	return &FetchError{AccountID: accountID, Err: err}
}

// ContractInfoNotFoundError is returned when the query succeeded but no contract is stored
// at the account id.
type ContractInfoNotFoundError struct {
	AccountID types.AccountID
}

func (e *ContractInfoNotFoundError) Error() string {
	return fmt.Sprintf("no contract information was found for account id %s", e.AccountID)
}

func NewContractInfoNotFoundError(accountID types.AccountID) *ContractInfoNotFoundError {
	return &ContractInfoNotFoundError{AccountID: accountID}
}

// SerializationError is returned when a record cannot be encoded for output.
type SerializationError struct {
	Format types.OutputFormat
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize contract info as %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func NewSerializationError(format types.OutputFormat, err error) *SerializationError {
	return &SerializationError{Format: format, Err: err}
}
