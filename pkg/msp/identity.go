/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package msp encodes network identities into the canonical
// SerializedIdentity record carried in proposal signature headers.
package msp

import (
	pb_msp "github.com/hyperledger/fabric-protos-go/msp"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

// NewSerializedIdentity returns the identity record for the given MSP ID and
// credential. The credential is stored as raw bytes and is not validated.
func NewSerializedIdentity(mspID string, creator string) *pb_msp.SerializedIdentity {
	return &pb_msp.SerializedIdentity{
		Mspid:   mspID,
		IdBytes: []byte(creator),
	}
}

// SerializeIdentity returns the canonical bytes of the identity record for
// the given MSP ID and credential.
func SerializeIdentity(mspID string, creator string) ([]byte, error) {
	identity, err := protoutil.Marshal(NewSerializedIdentity(mspID, creator))
	if err != nil {
		return nil, errors.Wrap(err, "marshal serializedIdentity failed")
	}
	return identity, nil
}

// GetSerializedIdentity decodes a serialized identity record.
func GetSerializedIdentity(b []byte) (*pb_msp.SerializedIdentity, error) {
	sid := &pb_msp.SerializedIdentity{}
	if err := protoutil.Unmarshal(b, sid); err != nil {
		return nil, errors.Wrap(err, "unmarshal serializedIdentity failed")
	}
	return sid, nil
}
