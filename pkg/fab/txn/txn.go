/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package txn assembles unsigned chaincode transaction proposals.
//
// A proposal is built top-down: the chaincode invocation spec is wrapped in
// a proposal payload, the channel and signature headers are merged into a
// header, and both are embedded in the proposal as canonical bytes. Every
// nested record is serialized exactly once and only its bytes are embedded
// in the parent, so the committed encoding cannot drift afterwards.
//
// Hashing, signing and sending the proposal are left to the caller.
package txn

import (
	"github.com/hyperledger/fabric-proposal-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-proposal-go/pkg/common/logging"
)

var logger = logging.NewLogger("fabproposal/txn")

func missingConfig(msg string) error {
	return status.New(status.ProposalBuilderStatus, status.MissingConfiguration.ToInt32(), msg, nil)
}

func malformedInput(field string) error {
	return status.New(status.ProposalBuilderStatus, status.MalformedInput.ToInt32(), field+" is required", []interface{}{field})
}
