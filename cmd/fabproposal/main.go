/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Command fabproposal builds unsigned chaincode proposals from a config file
// and decodes existing ones.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/logging"
)

var logger = logging.NewLogger("fabproposal/cmd")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fabproposal",
		Short: "Build and inspect unsigned chaincode proposals",
		Long:  "Build and inspect unsigned Hyperledger Fabric chaincode transaction proposals",
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(inspectCmd())

	return rootCmd
}
