/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog is the default module logger, backed by zap.
package modlog

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyperledger/fabric-proposal-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-proposal-go/pkg/core/logging/metadata"
)

var rwmutex = &sync.RWMutex{}
var moduleLevels = &metadata.ModuleLevels{}

// Provider is the default logger implementation
type Provider struct {
	core zapcore.Core
}

// GetLogger returns a logger for the given module
func (p *Provider) GetLogger(module string) api.Logger {
	return &Log{
		sugar:  zap.New(p.core).Named(module).Sugar(),
		module: module,
	}
}

// LoggerProvider returns the default provider writing to stderr
func LoggerProvider() api.LoggerProvider {
	return NewProvider(os.Stderr)
}

// NewProvider returns a provider writing console-encoded entries to w.
// Level filtering is done per module by Log, so the core accepts everything.
func NewProvider(w io.Writer) *Provider {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		zapcore.ISO8601TimeEncoder(t.UTC(), enc)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.NameKey = "module"

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return &Provider{core: core}
}

//SetLevel - setting log level for given module
func SetLevel(module string, level api.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()
	moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func GetLevel(module string) api.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level api.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.IsEnabledFor(module, level)
}

// Log is the default module logger
type Log struct {
	sugar  *zap.SugaredLogger
	module string
}

// Debug logs at DEBUG
func (l *Log) Debug(args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.sugar.Debug(args...)
	}
}

// Debugf logs formatted at DEBUG
func (l *Log) Debugf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.sugar.Debugf(format, args...)
	}
}

// Info logs at INFO
func (l *Log) Info(args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.sugar.Info(args...)
	}
}

// Infof logs formatted at INFO
func (l *Log) Infof(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.sugar.Infof(format, args...)
	}
}

// Warn logs at WARNING
func (l *Log) Warn(args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.sugar.Warn(args...)
	}
}

// Warnf logs formatted at WARNING
func (l *Log) Warnf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.sugar.Warnf(format, args...)
	}
}

// Error logs at ERROR
func (l *Log) Error(args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.sugar.Error(args...)
	}
}

// Errorf logs formatted at ERROR
func (l *Log) Errorf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.sugar.Errorf(format, args...)
	}
}

// Sync flushes any buffered entries
func (l *Log) Sync() error {
	return l.sugar.Sync()
}
