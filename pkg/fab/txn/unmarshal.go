/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"github.com/hyperledger/fabric-protos-go/common"
	pb_msp "github.com/hyperledger/fabric-protos-go/msp"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-proposal-go/pkg/msp"
	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

// GetHeader unmarshals a proposal header
func GetHeader(b []byte) (*common.Header, error) {
	hdr := &common.Header{}
	err := protoutil.Unmarshal(b, hdr)
	return hdr, errors.Wrap(err, "error unmarshaling Header")
}

// GetChannelHeader unmarshals a channel header
func GetChannelHeader(b []byte) (*common.ChannelHeader, error) {
	chdr := &common.ChannelHeader{}
	err := protoutil.Unmarshal(b, chdr)
	return chdr, errors.Wrap(err, "error unmarshaling ChannelHeader")
}

// GetSignatureHeader unmarshals a signature header
func GetSignatureHeader(b []byte) (*common.SignatureHeader, error) {
	sh := &common.SignatureHeader{}
	err := protoutil.Unmarshal(b, sh)
	return sh, errors.Wrap(err, "error unmarshaling SignatureHeader")
}

// GetChaincodeHeaderExtension unmarshals a chaincode header extension
func GetChaincodeHeaderExtension(b []byte) (*pb.ChaincodeHeaderExtension, error) {
	ext := &pb.ChaincodeHeaderExtension{}
	err := protoutil.Unmarshal(b, ext)
	return ext, errors.Wrap(err, "error unmarshaling ChaincodeHeaderExtension")
}

// GetChaincodeProposalPayload unmarshals a chaincode proposal payload
func GetChaincodeProposalPayload(b []byte) (*pb.ChaincodeProposalPayload, error) {
	cpp := &pb.ChaincodeProposalPayload{}
	err := protoutil.Unmarshal(b, cpp)
	return cpp, errors.Wrap(err, "error unmarshaling ChaincodeProposalPayload")
}

// GetChaincodeInvocationSpec unmarshals a chaincode invocation spec
func GetChaincodeInvocationSpec(b []byte) (*pb.ChaincodeInvocationSpec, error) {
	cis := &pb.ChaincodeInvocationSpec{}
	err := protoutil.Unmarshal(b, cis)
	return cis, errors.Wrap(err, "error unmarshaling ChaincodeInvocationSpec")
}

// GetProposal unmarshals a proposal
func GetProposal(b []byte) (*pb.Proposal, error) {
	prop := &pb.Proposal{}
	err := protoutil.Unmarshal(b, prop)
	return prop, errors.Wrap(err, "error unmarshaling Proposal")
}

// DecodedProposal holds every decoded layer of a proposal
type DecodedProposal struct {
	ChannelHeader   *common.ChannelHeader
	HeaderExtension *pb.ChaincodeHeaderExtension
	SignatureHeader *common.SignatureHeader
	Creator         *pb_msp.SerializedIdentity
	InvocationSpec  *pb.ChaincodeInvocationSpec
}

// DecodeProposal unmarshals all nested layers of a proposal.
func DecodeProposal(prop *pb.Proposal) (*DecodedProposal, error) {
	if prop == nil {
		return nil, errors.New("proposal is nil")
	}

	hdr, err := GetHeader(prop.Header)
	if err != nil {
		return nil, err
	}
	chdr, err := GetChannelHeader(hdr.ChannelHeader)
	if err != nil {
		return nil, err
	}
	ext, err := GetChaincodeHeaderExtension(chdr.Extension)
	if err != nil {
		return nil, err
	}
	shdr, err := GetSignatureHeader(hdr.SignatureHeader)
	if err != nil {
		return nil, err
	}
	creator, err := msp.GetSerializedIdentity(shdr.Creator)
	if err != nil {
		return nil, err
	}
	cpp, err := GetChaincodeProposalPayload(prop.Payload)
	if err != nil {
		return nil, err
	}
	cis, err := GetChaincodeInvocationSpec(cpp.Input)
	if err != nil {
		return nil, err
	}

	return &DecodedProposal{
		ChannelHeader:   chdr,
		HeaderExtension: ext,
		SignatureHeader: shdr,
		Creator:         creator,
		InvocationSpec:  cis,
	}, nil
}
