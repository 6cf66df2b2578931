/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package txn

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-protos-go/common"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/test/mockfab"
)

func testArgs() [][]byte {
	return [][]byte{[]byte("invoke"), []byte("a"), []byte("b"), []byte("10")}
}

func TestNewTransactionProposal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	prop, err := NewProposalBuilder().
		ChaincodeID(&pb.ChaincodeID{Name: "mycc"}).
		Args(testArgs()).
		Context(mockfab.DefaultMockContext(mockCtrl)).
		Build()
	require.NoError(t, err)
	require.NotNil(t, prop)

	decoded, err := DecodeProposal(prop)
	require.NoError(t, err)

	chdr := decoded.ChannelHeader
	assert.Equal(t, "mychannel", chdr.ChannelId)
	assert.Equal(t, "tx123", chdr.TxId)
	assert.Equal(t, int32(common.HeaderType_ENDORSER_TRANSACTION), chdr.Type)
	assert.Equal(t, uint64(0), chdr.Epoch)
	assert.Nil(t, chdr.Timestamp)
	assert.Equal(t, "mycc", decoded.HeaderExtension.ChaincodeId.Name)

	assert.Equal(t, []byte{1, 2, 3}, decoded.SignatureHeader.Nonce)
	assert.Equal(t, "Org1MSP", decoded.Creator.Mspid)
	assert.Equal(t, []byte("user1"), decoded.Creator.IdBytes)

	spec := decoded.InvocationSpec.ChaincodeSpec
	assert.Equal(t, "mycc", spec.ChaincodeId.Name)
	assert.Equal(t, pb.ChaincodeSpec_GOLANG, spec.Type)
	assert.Equal(t, testArgs(), spec.Input.Args)

	_, err = proto.Marshal(prop)
	assert.NoError(t, err)
}

func TestBuildIsIdempotent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	b := NewProposalBuilder().
		Context(mockfab.DefaultMockContext(mockCtrl)).
		ChaincodeID(&pb.ChaincodeID{Name: "mycc", Version: "v1"}).
		Args(testArgs())

	p1, err := b.Build()
	require.NoError(t, err)
	p2, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, p1.Header, p2.Header)
	assert.Equal(t, p1.Payload, p2.Payload)
}

func TestBuildDiffersOnlyByContext(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	values := mockfab.DefaultContextValues()
	values.TxnID = "tx456"
	values.Nonce = []byte{9, 9, 9, 9}

	ccID := &pb.ChaincodeID{Name: "mycc"}
	p1, err := NewProposalBuilder().ChaincodeID(ccID).Args(testArgs()).Context(mockfab.DefaultMockContext(mockCtrl)).Build()
	require.NoError(t, err)
	p2, err := NewProposalBuilder().ChaincodeID(ccID).Args(testArgs()).Context(mockfab.CustomMockContext(mockCtrl, values)).Build()
	require.NoError(t, err)

	assert.Equal(t, p1.Payload, p2.Payload)
	assert.NotEqual(t, p1.Header, p2.Header)

	d2, err := DecodeProposal(p2)
	require.NoError(t, err)
	assert.Equal(t, "tx456", d2.ChannelHeader.TxId)
	assert.Equal(t, []byte{9, 9, 9, 9}, d2.SignatureHeader.Nonce)
}

func TestArgumentOrderPreserved(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name string
		args [][]byte
	}{
		{"empty", nil},
		{"single", [][]byte{[]byte("query")}},
		{"duplicates", [][]byte{[]byte("a"), []byte("a"), []byte("b"), []byte("a")}},
		{"binary", [][]byte{{0x00, 0xff}, {}, {0x10}, []byte("z")}},
		{"reverse", [][]byte{[]byte("3"), []byte("2"), []byte("1")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prop, err := NewProposalBuilder().
				ChaincodeID(&pb.ChaincodeID{Name: "mycc"}).
				Args(tc.args).
				Context(mockfab.DefaultMockContext(mockCtrl)).
				Build()
			require.NoError(t, err)

			decoded, err := DecodeProposal(prop)
			require.NoError(t, err)

			got := decoded.InvocationSpec.ChaincodeSpec.Input.Args
			require.Len(t, got, len(tc.args))
			for i := range tc.args {
				assert.Equal(t, len(tc.args[i]), len(got[i]))
				if len(tc.args[i]) > 0 {
					assert.Equal(t, tc.args[i], got[i])
				}
			}
		})
	}
}

func TestBuildMissingContext(t *testing.T) {
	prop, err := NewProposalBuilder().
		ChaincodeID(&pb.ChaincodeID{Name: "mycc"}).
		Args(testArgs()).
		Build()
	assert.Nil(t, prop)
	require.Error(t, err)

	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, status.ProposalBuilderStatus, s.Group)
	assert.EqualValues(t, status.MissingConfiguration, s.Code)
}

func TestBuildMissingChaincodeID(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	prop, err := NewProposalBuilder().
		Context(mockfab.DefaultMockContext(mockCtrl)).
		Build()
	assert.Nil(t, prop)
	assert.True(t, status.Is(err, status.MissingConfiguration))
}

func TestBuildMalformedContext(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name   string
		modify func(v *mockfab.ContextValues)
	}{
		{"transaction ID", func(v *mockfab.ContextValues) { v.TxnID = "" }},
		{"channel ID", func(v *mockfab.ContextValues) { v.ChannelID = "" }},
		{"creator", func(v *mockfab.ContextValues) { v.Creator = "" }},
		{"MSP ID", func(v *mockfab.ContextValues) { v.MSPID = "" }},
		{"nonce", func(v *mockfab.ContextValues) { v.Nonce = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := mockfab.DefaultContextValues()
			tc.modify(&values)

			prop, err := NewProposalBuilder().
				ChaincodeID(&pb.ChaincodeID{Name: "mycc"}).
				Args(testArgs()).
				Context(mockfab.CustomMockContext(mockCtrl, values)).
				Build()
			assert.Nil(t, prop)
			require.Error(t, err)
			assert.True(t, status.Is(err, status.MalformedInput))
			assert.Contains(t, err.Error(), tc.name+" is required")
		})
	}
}

func TestBuilderSettersOverwrite(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	values := mockfab.DefaultContextValues()
	values.ChannelID = "otherchannel"

	prop, err := NewProposalBuilder().
		ChaincodeID(&pb.ChaincodeID{Name: "first"}).
		Args([][]byte{[]byte("x")}).
		Lang(pb.ChaincodeSpec_JAVA).
		Context(mockfab.DefaultMockContext(mockCtrl)).
		ChaincodeID(&pb.ChaincodeID{Name: "second"}).
		Args([][]byte{[]byte("y"), []byte("z")}).
		Lang(pb.ChaincodeSpec_NODE).
		Context(mockfab.CustomMockContext(mockCtrl, values)).
		Build()
	require.NoError(t, err)

	decoded, err := DecodeProposal(prop)
	require.NoError(t, err)
	assert.Equal(t, "otherchannel", decoded.ChannelHeader.ChannelId)
	assert.Equal(t, "second", decoded.HeaderExtension.ChaincodeId.Name)
	spec := decoded.InvocationSpec.ChaincodeSpec
	assert.Equal(t, "second", spec.ChaincodeId.Name)
	assert.Equal(t, pb.ChaincodeSpec_NODE, spec.Type)
	assert.Equal(t, [][]byte{[]byte("y"), []byte("z")}, spec.Input.Args)
}

func TestBuildWithTimestamp(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ts := time.Date(2020, 1, 2, 3, 4, 5, 6, time.UTC)
	prop, err := NewProposalBuilder().
		ChaincodeID(&pb.ChaincodeID{Name: "mycc"}).
		Context(mockfab.DefaultMockContext(mockCtrl)).
		Timestamp(ts).
		Build()
	require.NoError(t, err)

	decoded, err := DecodeProposal(prop)
	require.NoError(t, err)
	require.NotNil(t, decoded.ChannelHeader.Timestamp)
	assert.Equal(t, ts.Unix(), decoded.ChannelHeader.Timestamp.Seconds)
	assert.Equal(t, int32(6), decoded.ChannelHeader.Timestamp.Nanos)
}

func TestCreateProposalUsesLangVerbatim(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	prop, err := CreateProposal(ProposalRequest{
		ChaincodeID: &pb.ChaincodeID{Name: "mycc"},
		Context:     mockfab.DefaultMockContext(mockCtrl),
		Lang:        pb.ChaincodeSpec_CAR,
	})
	require.NoError(t, err)

	decoded, err := DecodeProposal(prop)
	require.NoError(t, err)
	assert.Equal(t, pb.ChaincodeSpec_CAR, decoded.InvocationSpec.ChaincodeSpec.Type)
}

func TestProposalEmbedsSerializedLayers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ccID := &pb.ChaincodeID{Name: "mycc"}
	ctx := mockfab.DefaultMockContext(mockCtrl)

	prop, err := NewProposalBuilder().ChaincodeID(ccID).Args(testArgs()).Context(ctx).Build()
	require.NoError(t, err)

	// rebuild each layer independently and compare the embedded bytes
	hdr, err := CreateHeader(HeaderOpts{
		TxnID:       ctx.TransactionID(),
		ChannelID:   ctx.ChannelID(),
		ChaincodeID: ccID,
		Creator:     ctx.Creator(),
		MSPID:       ctx.MSPID(),
		Nonce:       ctx.Nonce(),
	})
	require.NoError(t, err)
	hdrBytes, err := proto.Marshal(hdr)
	require.NoError(t, err)
	assert.Equal(t, hdrBytes, prop.Header)

	payload, err := CreateProposalPayload(CreateInvocationSpec(ccID, DefaultLang, testArgs()))
	require.NoError(t, err)
	payloadBytes, err := proto.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, payloadBytes, prop.Payload)

	// later mutation of the caller's chaincode ID does not alter committed bytes
	ccID.Name = "changed"
	decoded, err := DecodeProposal(prop)
	require.NoError(t, err)
	assert.Equal(t, "mycc", decoded.InvocationSpec.ChaincodeSpec.ChaincodeId.Name)
}
