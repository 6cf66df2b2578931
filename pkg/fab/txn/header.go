/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"time"

	"github.com/hyperledger/fabric-protos-go/common"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-proposal-go/pkg/msp"
	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

// HeaderOpts holds the parameters to create a proposal Header.
type HeaderOpts struct {
	TxnID       fab.TransactionID
	ChannelID   string
	ChaincodeID *pb.ChaincodeID
	Creator     string
	MSPID       string
	Nonce       []byte
	// Timestamp is stamped into the channel header when set.
	Timestamp time.Time
}

func (opts *HeaderOpts) validate() error {
	switch {
	case opts.TxnID == fab.EmptyTransactionID:
		return malformedInput("transaction ID")
	case opts.ChannelID == "":
		return malformedInput("channel ID")
	case opts.Creator == "":
		return malformedInput("creator")
	case opts.MSPID == "":
		return malformedInput("MSP ID")
	case len(opts.Nonce) == 0:
		return malformedInput("nonce")
	}
	return nil
}

// CreateChannelHeader builds the channel header of an endorser transaction.
// The epoch is always zero. When a chaincode ID is given it is carried in a
// ChaincodeHeaderExtension so peers can route without reading the payload.
func CreateChannelHeader(txnID fab.TransactionID, channelID string, ccID *pb.ChaincodeID, timestamp time.Time) (*common.ChannelHeader, error) {
	channelHeader := &common.ChannelHeader{
		Type:      int32(common.HeaderType_ENDORSER_TRANSACTION),
		ChannelId: channelID,
		TxId:      string(txnID),
		Epoch:     0,
	}

	if !timestamp.IsZero() {
		channelHeader.Timestamp = timestamppb.New(timestamp)
	}

	if ccID != nil {
		headerExt := &pb.ChaincodeHeaderExtension{
			ChaincodeId: ccID,
		}
		headerExtBytes, err := protoutil.Marshal(headerExt)
		if err != nil {
			return nil, errors.Wrap(err, "marshal header extension failed")
		}
		channelHeader.Extension = headerExtBytes
	}
	return channelHeader, nil
}

// CreateSignatureHeader builds a signature header from serialized creator
// identity bytes and a nonce, both embedded unchanged.
func CreateSignatureHeader(creator []byte, nonce []byte) *common.SignatureHeader {
	return &common.SignatureHeader{
		Creator: creator,
		Nonce:   nonce,
	}
}

// CreateHeader assembles the proposal header. The channel and signature
// headers are serialized independently and embedded as opaque bytes.
// No signing occurs here.
func CreateHeader(opts HeaderOpts) (*common.Header, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	channelHeader, err := CreateChannelHeader(opts.TxnID, opts.ChannelID, opts.ChaincodeID, opts.Timestamp)
	if err != nil {
		return nil, errors.WithMessage(err, "channel header creation failed")
	}

	creator, err := msp.SerializeIdentity(opts.MSPID, opts.Creator)
	if err != nil {
		return nil, errors.WithMessage(err, "creator identity serialization failed")
	}

	signatureHeader := CreateSignatureHeader(creator, opts.Nonce)

	ch, err := protoutil.Marshal(channelHeader)
	if err != nil {
		return nil, errors.Wrap(err, "marshal channelHeader failed")
	}
	sh, err := protoutil.Marshal(signatureHeader)
	if err != nil {
		return nil, errors.Wrap(err, "marshal signatureHeader failed")
	}

	return &common.Header{
		ChannelHeader:   ch,
		SignatureHeader: sh,
	}, nil
}
