/*
Copyright SecureKey Technologies Inc., Unchain B.V. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockfab

import (
	"github.com/golang/mock/gomock"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/fab"
)

// Default transaction context values
const (
	DefaultChannelID = "mychannel"
	DefaultTxnID     = fab.TransactionID("tx123")
	DefaultCreator   = "user1"
	DefaultMSPID     = "Org1MSP"
)

// DefaultNonce is the nonce returned by DefaultMockContext
var DefaultNonce = []byte{1, 2, 3}

// ContextValues holds the values a mock context returns
type ContextValues struct {
	ChannelID string
	TxnID     fab.TransactionID
	Nonce     []byte
	Creator   string
	MSPID     string
}

// DefaultContextValues returns the default mock context values
func DefaultContextValues() ContextValues {
	return ContextValues{
		ChannelID: DefaultChannelID,
		TxnID:     DefaultTxnID,
		Nonce:     DefaultNonce,
		Creator:   DefaultCreator,
		MSPID:     DefaultMSPID,
	}
}

// DefaultMockContext returns a mock transaction context with the default values
func DefaultMockContext(mockCtrl *gomock.Controller) *MockTransactionContext {
	return CustomMockContext(mockCtrl, DefaultContextValues())
}

// CustomMockContext returns a mock transaction context returning the given values
func CustomMockContext(mockCtrl *gomock.Controller, v ContextValues) *MockTransactionContext {
	ctx := NewMockTransactionContext(mockCtrl)

	ctx.EXPECT().ChannelID().Return(v.ChannelID).AnyTimes()
	ctx.EXPECT().TransactionID().Return(v.TxnID).AnyTimes()
	ctx.EXPECT().Nonce().Return(v.Nonce).AnyTimes()
	ctx.EXPECT().Creator().Return(v.Creator).AnyTimes()
	ctx.EXPECT().MSPID().Return(v.MSPID).AnyTimes()

	return ctx
}
