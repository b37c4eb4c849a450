package contractinfo

import (
	"github.com/spf13/cobra"

	contractinfo "github.com/smartcontractkit/contract-info"
	"github.com/smartcontractkit/contract-info/sdk"
)

func BuildContractCmd() *cobra.Command {
	var envFile string

	cmd := cobra.Command{
		Use:           "contract",
		Short:         "Inspect contracts deployed on a Substrate node",
		Long:          ``,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional file with environment variables (CONTRACT, OUTPUT_JSON)")

	cmd.AddCommand(buildInfoCmd())

	return &cmd
}

func buildInfoCmd() *cobra.Command {
	var (
		contract   string
		url        string
		outputJSON bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "info",
		Short:        "Get infos from a contract",
		Long:         `Fetch the ContractInfoOf record of a pallet-contracts contract at the node's current state and print it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(contract, url, outputJSON, cmd.Flags().Changed("output-json"))
			if err != nil {
				return err
			}

			logger := newLogger(verbose)
			defer func() { _ = logger.Sync() }()

			ctx := sdk.ContextWithLogger(cmd.Context(), logger.Sugar())

			return contractinfo.Run(ctx, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "The address of the contract to display info of (defaults to $CONTRACT)")
	cmd.Flags().StringVar(&url, "url", contractinfo.DefaultURL, "RPC endpoint of the node")
	cmd.Flags().BoolVar(&outputJSON, "output-json", false, "Export the output as JSON (defaults to $OUTPUT_JSON)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}
