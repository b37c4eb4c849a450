package contractinfo

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/contract-info/types"
)

// DefaultURL is the RPC endpoint of a local development node.
const DefaultURL = "ws://localhost:9944"

// Config holds the inputs of a single contract info query.
type Config struct {
	// Contract is the account id of the contract to inspect.
	Contract types.AccountID
	// URL is the node's RPC endpoint.
	URL    string `validate:"required,url"`
	Output types.OutputFormat
}

// Validate checks that the configuration can be used to run a query.
func (c Config) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Contract.IsZero() {
		return errors.New("contract account id is required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	return c.Output.Validate()
}
