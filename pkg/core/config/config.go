/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config loads proposal descriptions from YAML or JSON.
package config

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-proposal-go/pkg/common/logging"
)

var logger = logging.NewLogger("fabproposal/config")

var logModules = [...]string{"fabproposal/txn", "fabproposal/config", "fabproposal/common", "fabproposal/cmd"}

type options struct {
	envPrefix string
}

const (
	cmdRoot = "FABRIC_PROPOSAL"

	logLevelKey = "client.logging.level"
)

// Option configures the package.
type Option func(opts *options) error

// ConfigProvider provides a config backend
type ConfigProvider func() (*Backend, error)

// FromReader loads configuration from in.
// configType can be "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) ConfigProvider {
	return func() (*Backend, error) {
		return initFromReader(in, configType, opts...)
	}
}

// FromFile reads from named config file
func FromFile(name string, opts ...Option) ConfigProvider {
	return func() (*Backend, error) {
		if name == "" {
			return nil, invalidConfig(errors.New("filename is required"))
		}

		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}

		backend.configViper.SetConfigFile(name)

		err = backend.configViper.MergeInConfig()
		if err != nil {
			return nil, invalidConfig(errors.Wrapf(err, "loading config file failed: %s", name))
		}

		if abs, err := filepath.Abs(name); err == nil {
			backend.configDir = filepath.Dir(abs)
		}

		if err := setLogLevel(backend); err != nil {
			return nil, err
		}
		logger.Debugf("loaded config file %s", name)

		return backend, nil
	}
}

// FromRaw will initialize the configs from a byte array
func FromRaw(configBytes []byte, configType string, opts ...Option) ConfigProvider {
	return func() (*Backend, error) {
		return initFromReader(bytes.NewBuffer(configBytes), configType, opts...)
	}
}

func initFromReader(in io.Reader, configType string, opts ...Option) (*Backend, error) {
	if configType == "" {
		return nil, invalidConfig(errors.New("empty config type"))
	}

	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	// read config from bytes array, but must set ConfigType
	// for viper to properly unmarshal the bytes array
	backend.configViper.SetConfigType(configType)
	err = backend.configViper.MergeConfig(in)
	if err != nil {
		return nil, invalidConfig(errors.Wrap(err, "reading config failed"))
	}

	if err := setLogLevel(backend); err != nil {
		return nil, err
	}

	return backend, nil
}

// WithEnvPrefix defines the prefix for environment variable overrides.
// See viper SetEnvPrefix for more information.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		if prefix == "" {
			return errors.New("env prefix must not be empty")
		}
		opts.envPrefix = prefix
		return nil
	}
}

func newBackend(opts ...Option) (*Backend, error) {
	o := options{
		envPrefix: cmdRoot,
	}

	for _, option := range opts {
		err := option(&o)
		if err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new config backend")
		}
	}

	v := newViper(o.envPrefix)
	v.SetDefault("chaincode.lang", "golang")

	return &Backend{configViper: v}, nil
}

func newViper(cmdRootPrefix string) *viper.Viper {
	myViper := viper.New()
	myViper.SetEnvPrefix(cmdRootPrefix)
	myViper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	myViper.SetEnvKeyReplacer(replacer)
	return myViper
}

// setLogLevel will set the log level of the client
func setLogLevel(backend *Backend) error {
	loggingLevelString, ok := backend.Lookup(logLevelKey)
	if !ok {
		return nil
	}

	s, ok := loggingLevelString.(string)
	if !ok {
		return invalidConfig(errors.Errorf("%s must be a string", logLevelKey))
	}

	logLevel, err := logging.LogLevel(s)
	if err != nil {
		return invalidConfig(err)
	}

	for _, logModule := range logModules {
		logging.SetLevel(logModule, logLevel)
	}
	return nil
}

func invalidConfig(err error) error {
	return errors.WithMessage(status.New(status.ConfigStatus, status.InvalidConfig.ToInt32(), err.Error(), nil), "invalid configuration")
}

// Backend is the viper-backed configuration source
type Backend struct {
	configViper *viper.Viper
	configDir   string
}

// Lookup gets the config item value by Key
func (c *Backend) Lookup(key string) (interface{}, bool) {
	value := c.configViper.Get(key)
	if value == nil {
		return nil, false
	}
	return value, true
}
