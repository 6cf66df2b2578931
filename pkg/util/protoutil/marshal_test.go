/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package protoutil

import (
	"testing"

	"github.com/golang/protobuf/proto"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMatchesProtoMarshal(t *testing.T) {
	ccid := &pb.ChaincodeID{Name: "mycc", Version: "1.0", Path: "github.com/example/cc"}

	b, err := Marshal(ccid)
	require.NoError(t, err)

	expected, err := proto.Marshal(ccid)
	require.NoError(t, err)
	assert.Equal(t, expected, b)

	decoded := &pb.ChaincodeID{}
	require.NoError(t, Unmarshal(b, decoded))
	assert.True(t, proto.Equal(ccid, decoded))
}

func TestMarshalIsStable(t *testing.T) {
	input := &pb.ChaincodeInput{
		Args:        [][]byte{[]byte("invoke"), []byte("a")},
		Decorations: map[string][]byte{"z": {1}, "a": {2}, "m": {3}},
	}
	first, err := Marshal(input)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMarshalNil(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)
}

func TestUnmarshalGarbage(t *testing.T) {
	err := Unmarshal([]byte{0xff, 0xff, 0xff}, &pb.ChaincodeID{})
	assert.Error(t, err)
}
