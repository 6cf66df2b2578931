/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"encoding/hex"
	"os"
	"reflect"

	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-proposal-go/pkg/fab/txn"
	"github.com/hyperledger/fabric-proposal-go/pkg/util/pathvar"
)

// ProposalConfig describes a proposal to build
type ProposalConfig struct {
	Channel     string
	Chaincode   ChaincodeConfig
	Args        []string
	Identity    IdentityConfig
	Transaction TransactionConfig
}

// ChaincodeConfig identifies the chaincode to invoke
type ChaincodeConfig struct {
	Name    string
	Path    string
	Version string
	Lang    pb.ChaincodeSpec_Type
}

// IdentityConfig holds the creator identity. Cert takes precedence over CertPath.
type IdentityConfig struct {
	MSPID    string `mapstructure:"mspid"`
	Cert     string
	CertPath string `mapstructure:"certPath"`
}

// TransactionConfig optionally pins the transaction ID and nonce (hex).
// Both are generated when empty.
type TransactionConfig struct {
	ID    string
	Nonce string
}

var chaincodeLangType = reflect.TypeOf(pb.ChaincodeSpec_UNDEFINED)

func stringToLangHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != chaincodeLangType {
			return data, nil
		}
		return txn.ParseLang(data.(string))
	}
}

// ProposalConfig decodes the proposal description.
func (c *Backend) ProposalConfig() (*ProposalConfig, error) {
	cfg := &ProposalConfig{}
	err := c.configViper.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToLangHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, invalidConfig(errors.Wrap(err, "decoding proposal config failed"))
	}

	if cfg.Identity.CertPath != "" {
		cfg.Identity.CertPath = pathvar.SubstWithVars(cfg.Identity.CertPath, map[string]string{"CONFIG_DIR": c.configDir})
	}

	return cfg, nil
}

// ChaincodeID returns the configured chaincode ID
func (c *ProposalConfig) ChaincodeID() (*pb.ChaincodeID, error) {
	if c.Chaincode.Name == "" {
		return nil, invalidConfig(errors.New("chaincode.name is required"))
	}
	return &pb.ChaincodeID{
		Name:    c.Chaincode.Name,
		Path:    c.Chaincode.Path,
		Version: c.Chaincode.Version,
	}, nil
}

// ArgBytes returns the arguments in order as raw bytes
func (c *ProposalConfig) ArgBytes() [][]byte {
	args := make([][]byte, len(c.Args))
	for i, arg := range c.Args {
		args[i] = []byte(arg)
	}
	return args
}

// Creator returns the creator credential, read from CertPath when no
// inline Cert is configured.
func (c *ProposalConfig) Creator() (string, error) {
	if c.Identity.Cert != "" {
		return c.Identity.Cert, nil
	}
	if c.Identity.CertPath == "" {
		return "", invalidConfig(errors.New("identity.cert or identity.certPath is required"))
	}
	b, err := os.ReadFile(c.Identity.CertPath)
	if err != nil {
		return "", invalidConfig(errors.Wrapf(err, "reading certificate failed: %s", c.Identity.CertPath))
	}
	return string(b), nil
}

// TransactionContext returns the context described by the configuration.
// A configured transaction ID must come with its nonce.
func (c *ProposalConfig) TransactionContext() (*txn.Context, error) {
	creator, err := c.Creator()
	if err != nil {
		return nil, err
	}

	var nonce []byte
	if c.Transaction.Nonce != "" {
		nonce, err = hex.DecodeString(c.Transaction.Nonce)
		if err != nil {
			return nil, invalidConfig(errors.Wrap(err, "transaction.nonce must be hex encoded"))
		}
	}

	if c.Transaction.ID != "" {
		if len(nonce) == 0 {
			return nil, invalidConfig(errors.New("transaction.nonce is required when transaction.id is set"))
		}
		return txn.NewContext(c.Channel, fab.TransactionID(c.Transaction.ID), nonce, creator, c.Identity.MSPID), nil
	}

	var opts []txn.ContextOpt
	if len(nonce) > 0 {
		opts = append(opts, txn.WithNonce(nonce))
	}
	return txn.NewContextFromIdentity(c.Channel, creator, c.Identity.MSPID, opts...)
}

// Builder returns a proposal builder configured from c.
func (c *ProposalConfig) Builder() (*txn.ProposalBuilder, error) {
	ccID, err := c.ChaincodeID()
	if err != nil {
		return nil, err
	}
	ctx, err := c.TransactionContext()
	if err != nil {
		return nil, err
	}

	return txn.NewProposalBuilder().
		ChaincodeID(ccID).
		Args(c.ArgBytes()).
		Lang(c.Chaincode.Lang).
		Context(ctx), nil
}
