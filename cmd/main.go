package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/contract-info/cmd/contractinfo"
)

func main() {
	rootCmd := contractinfo.BuildContractCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
