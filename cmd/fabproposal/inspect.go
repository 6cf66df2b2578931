/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/hyperledger/fabric-proposal-go/pkg/fab/txn"
)

type inspectOpts struct {
	inputFile string
	format    string
}

type proposalView struct {
	ChannelHeader struct {
		Type      string `yaml:"type"`
		ChannelID string `yaml:"channel_id"`
		TxID      string `yaml:"tx_id"`
		Epoch     uint64 `yaml:"epoch"`
		Timestamp string `yaml:"timestamp,omitempty"`
		Chaincode string `yaml:"chaincode"`
	} `yaml:"channel_header"`
	SignatureHeader struct {
		MSPID   string `yaml:"mspid"`
		Creator string `yaml:"creator"`
		Nonce   string `yaml:"nonce"`
	} `yaml:"signature_header"`
	Invocation struct {
		Chaincode string   `yaml:"chaincode"`
		Path      string   `yaml:"path,omitempty"`
		Version   string   `yaml:"version,omitempty"`
		Lang      string   `yaml:"lang"`
		Args      []string `yaml:"args"`
	} `yaml:"invocation"`
}

// inspectCmd returns the cobra command for decoding a proposal
func inspectCmd() *cobra.Command {
	opts := &inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode a serialized proposal",
		Long:  "Decode every nested layer of a serialized proposal and print it as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return inspect(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.inputFile, "input", "i", "", "proposal file, stdin if empty")
	flags.StringVarP(&opts.format, "format", "f", formatHex, "input format: raw, hex or base64")

	return cmd
}

func inspect(cmd *cobra.Command, opts *inspectOpts) error {
	var in []byte
	var err error
	if opts.inputFile == "" {
		in, err = io.ReadAll(cmd.InOrStdin())
	} else {
		in, err = os.ReadFile(opts.inputFile)
	}
	if err != nil {
		return errors.Wrap(err, "reading proposal failed")
	}

	b, err := decode(in, opts.format)
	if err != nil {
		return errors.Wrap(err, "decoding input failed")
	}

	prop, err := txn.GetProposal(b)
	if err != nil {
		return err
	}
	decoded, err := txn.DecodeProposal(prop)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(newProposalView(decoded))
	if err != nil {
		return errors.Wrap(err, "marshal proposal view failed")
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func newProposalView(d *txn.DecodedProposal) *proposalView {
	v := &proposalView{}

	chdr := d.ChannelHeader
	v.ChannelHeader.Type = common.HeaderType(chdr.Type).String()
	v.ChannelHeader.ChannelID = chdr.ChannelId
	v.ChannelHeader.TxID = chdr.TxId
	v.ChannelHeader.Epoch = chdr.Epoch
	if chdr.Timestamp != nil {
		v.ChannelHeader.Timestamp = chdr.Timestamp.AsTime().UTC().Format("2006-01-02T15:04:05.999999999Z")
	}
	if d.HeaderExtension.ChaincodeId != nil {
		v.ChannelHeader.Chaincode = d.HeaderExtension.ChaincodeId.Name
	}

	v.SignatureHeader.MSPID = d.Creator.Mspid
	v.SignatureHeader.Creator = string(d.Creator.IdBytes)
	v.SignatureHeader.Nonce = hex.EncodeToString(d.SignatureHeader.Nonce)

	if spec := d.InvocationSpec.ChaincodeSpec; spec != nil {
		if spec.ChaincodeId != nil {
			v.Invocation.Chaincode = spec.ChaincodeId.Name
			v.Invocation.Path = spec.ChaincodeId.Path
			v.Invocation.Version = spec.ChaincodeId.Version
		}
		v.Invocation.Lang = spec.Type.String()
		if spec.Input != nil {
			for _, arg := range spec.Input.Args {
				v.Invocation.Args = append(v.Invocation.Args, string(arg))
			}
		}
	}

	return v
}
