/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-proposal-go/pkg/msp"
)

// NonceSize is the length of generated nonces
const NonceSize = 24

// Context is an immutable fab.TransactionContext.
type Context struct {
	channelID string
	txnID     fab.TransactionID
	nonce     []byte
	creator   string
	mspID     string
}

// NewContext returns a context holding the given values.
func NewContext(channelID string, txnID fab.TransactionID, nonce []byte, creator string, mspID string) *Context {
	return &Context{
		channelID: channelID,
		txnID:     txnID,
		nonce:     append([]byte(nil), nonce...),
		creator:   creator,
		mspID:     mspID,
	}
}

// ContextOptions holds options for NewContextFromIdentity
type ContextOptions struct {
	Nonce []byte
}

// ContextOpt is a NewContextFromIdentity option
type ContextOpt func(*ContextOptions)

// WithNonce uses the given nonce instead of generating one
func WithNonce(nonce []byte) ContextOpt {
	return func(options *ContextOptions) {
		options.Nonce = nonce
	}
}

// NewContextFromIdentity returns a context for the given identity with a
// fresh random nonce and the transaction ID derived from it.
func NewContextFromIdentity(channelID string, creator string, mspID string, opts ...ContextOpt) (*Context, error) {
	o := ContextOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	nonce := o.Nonce
	if len(nonce) == 0 {
		var err error
		nonce, err = GetRandomNonce()
		if err != nil {
			return nil, errors.WithMessage(err, "nonce creation failed")
		}
	}

	identity, err := msp.SerializeIdentity(mspID, creator)
	if err != nil {
		return nil, errors.WithMessage(err, "identity serialization failed")
	}

	return NewContext(channelID, ComputeTxnID(nonce, identity), nonce, creator, mspID), nil
}

// GetRandomNonce returns NonceSize random bytes
func GetRandomNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "error getting random bytes")
	}
	return nonce, nil
}

// ComputeTxnID returns hex(SHA-256(nonce || creator)), where creator is the
// serialized identity.
func ComputeTxnID(nonce, creator []byte) fab.TransactionID {
	b := make([]byte, 0, len(nonce)+len(creator))
	b = append(b, nonce...)
	b = append(b, creator...)

	digest := sha256.Sum256(b)
	return fab.TransactionID(hex.EncodeToString(digest[:]))
}

// ChannelID returns the channel ID
func (c *Context) ChannelID() string {
	return c.channelID
}

// TransactionID returns the transaction ID
func (c *Context) TransactionID() fab.TransactionID {
	return c.txnID
}

// Nonce returns the nonce
func (c *Context) Nonce() []byte {
	return c.nonce
}

// Creator returns the creator credential
func (c *Context) Creator() string {
	return c.creator
}

// MSPID returns the MSP ID
func (c *Context) MSPID() string {
	return c.mspID
}
