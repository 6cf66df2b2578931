/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package protoutil serializes protobuf records to the canonical bytes that
// get embedded in their parent records.
package protoutil

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	protoV2 "google.golang.org/protobuf/proto"
)

var canonical = protoV2.MarshalOptions{Deterministic: true}

// Marshal returns the deterministic wire encoding of msg.
func Marshal(msg proto.Message) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("nil message")
	}
	return canonical.Marshal(proto.MessageV2(msg))
}

// Unmarshal decodes b into msg.
func Unmarshal(b []byte, msg proto.Message) error {
	return proto.Unmarshal(b, msg)
}
