/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package metadata

import (
	"testing"

	"github.com/hyperledger/fabric-proposal-go/pkg/core/logging/api"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	mlevel := ModuleLevels{}

	mlevel.SetLevel("fabproposal/txn", api.DEBUG)
	mlevel.SetLevel("fabproposal/config", api.WARNING)

	assert.True(t, mlevel.IsEnabledFor("fabproposal/txn", api.DEBUG))
	assert.True(t, mlevel.IsEnabledFor("fabproposal/txn", api.ERROR))

	assert.False(t, mlevel.IsEnabledFor("fabproposal/config", api.INFO))
	assert.True(t, mlevel.IsEnabledFor("fabproposal/config", api.WARNING))

	//default log level is info
	assert.True(t, mlevel.IsEnabledFor("fabproposal/unknown", api.INFO))
	assert.False(t, mlevel.IsEnabledFor("fabproposal/unknown", api.DEBUG))

	mlevel.SetLevel("", api.ERROR)
	assert.False(t, mlevel.IsEnabledFor("fabproposal/unknown", api.WARNING))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want api.Level
	}{
		{"critical", api.CRITICAL},
		{"ERROR", api.ERROR},
		{"warn", api.WARNING},
		{"Warning", api.WARNING},
		{"info", api.INFO},
		{"debug", api.DEBUG},
	}
	for _, tc := range tests {
		l, err := ParseLevel(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, l, tc.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)

	assert.Equal(t, "DEBUG", ParseString(api.DEBUG))
	assert.Equal(t, "UNKNOWN", ParseString(api.Level(42)))
}
