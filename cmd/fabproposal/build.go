/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/fabric-proposal-go/pkg/core/config"
	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

type buildOpts struct {
	configFile string
	outputFile string
	format     string
}

// buildCmd returns the cobra command for building a proposal
func buildCmd() *cobra.Command {
	opts := &buildOpts{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an unsigned proposal from a config file",
		Long:  "Build an unsigned chaincode proposal from a config file and write its serialized bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true
			return build(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "proposal config file (yaml or json)")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output file, stdout if empty")
	flags.StringVarP(&opts.format, "format", "f", formatHex, "output format: raw, hex or base64")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func build(cmd *cobra.Command, opts *buildOpts) error {
	backend, err := config.FromFile(opts.configFile)()
	if err != nil {
		return err
	}
	cfg, err := backend.ProposalConfig()
	if err != nil {
		return err
	}
	builder, err := cfg.Builder()
	if err != nil {
		return err
	}
	prop, err := builder.Build()
	if err != nil {
		return errors.WithMessage(err, "building proposal failed")
	}

	b, err := protoutil.Marshal(prop)
	if err != nil {
		return errors.Wrap(err, "marshal proposal failed")
	}
	encoded, err := encode(b, opts.format)
	if err != nil {
		return err
	}

	if opts.outputFile == "" {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}

	if err := os.WriteFile(opts.outputFile, encoded, 0600); err != nil {
		return errors.Wrapf(err, "writing proposal failed: %s", opts.outputFile)
	}
	logger.Infof("wrote proposal for chaincode %s on channel %s to %s", cfg.Chaincode.Name, cfg.Channel, opts.outputFile)
	return nil
}
