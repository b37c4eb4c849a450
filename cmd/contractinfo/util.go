package contractinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	contractinfo "github.com/smartcontractkit/contract-info"
	"github.com/smartcontractkit/contract-info/internal/utils/safecast"
	"github.com/smartcontractkit/contract-info/types"
)

const (
	contractEnv   = "CONTRACT"
	outputJSONEnv = "OUTPUT_JSON"
)

// loadEnvFile loads variables from path into the environment without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// resolveConfig builds the query configuration from flags, falling back to the environment for
// values the flags do not set.
func resolveConfig(contract, url string, outputJSON, outputJSONSet bool) (contractinfo.Config, error) {
	if contract == "" {
		contract = os.Getenv(contractEnv)
	}
	if contract == "" {
		return contractinfo.Config{}, fmt.Errorf("--contract is required (or set %s)", contractEnv)
	}

	accountID, err := types.ParseAccountID(contract)
	if err != nil {
		return contractinfo.Config{}, err
	}

	if !outputJSONSet {
		if outputJSON, err = safecast.StringToBool(os.Getenv(outputJSONEnv)); err != nil {
			return contractinfo.Config{}, fmt.Errorf("invalid %s: %w", outputJSONEnv, err)
		}
	}

	return contractinfo.Config{
		Contract: accountID,
		URL:      url,
		Output:   types.OutputFormatFromJSONFlag(outputJSON),
	}, nil
}

// newLogger returns a debug level console logger on stderr when verbose, and a no-op logger
// otherwise so stdout only carries the rendered record.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	return zap.Must(zap.NewDevelopment())
}
