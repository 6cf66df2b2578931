/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fab

// TransactionID provides the identifier of a Fabric transaction proposal.
type TransactionID string

// EmptyTransactionID represents a non-existing transaction (usually due to error).
const EmptyTransactionID = TransactionID("")

// TransactionContext supplies the per-proposal session values a proposal
// header is assembled from. Values are copied verbatim into the proposal;
// generating and validating them is the implementation's responsibility.
type TransactionContext interface {
	// ChannelID is the channel the proposal is scoped to.
	ChannelID() string
	// TransactionID is the proposal's transaction ID.
	TransactionID() TransactionID
	// Nonce is the anti-replay nonce placed in the signature header.
	Nonce() []byte
	// Creator is the creator's credential (typically a PEM certificate).
	Creator() string
	// MSPID identifies the MSP that issued the creator's credential.
	MSPID() string
}
