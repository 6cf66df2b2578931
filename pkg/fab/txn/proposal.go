/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"time"

	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-proposal-go/pkg/common/providers/fab"
	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

// ProposalRequest holds everything needed to build a chaincode proposal.
// ChaincodeID and Context are required. Lang is used as given; callers
// that want the default runtime set it to DefaultLang.
type ProposalRequest struct {
	ChaincodeID *pb.ChaincodeID
	Args        [][]byte
	Context     fab.TransactionContext
	Lang        pb.ChaincodeSpec_Type
	Timestamp   time.Time
}

func (r *ProposalRequest) validate() error {
	if r.Context == nil {
		return missingConfig("transaction context is required")
	}
	if r.ChaincodeID == nil {
		return missingConfig("chaincode ID is required")
	}
	return nil
}

// CreateProposalPayload wraps a serialized invocation spec in a chaincode
// proposal payload.
func CreateProposalPayload(cis *pb.ChaincodeInvocationSpec) (*pb.ChaincodeProposalPayload, error) {
	cisBytes, err := protoutil.Marshal(cis)
	if err != nil {
		return nil, errors.Wrap(err, "marshal invocation spec failed")
	}
	return &pb.ChaincodeProposalPayload{Input: cisBytes}, nil
}

// CreateProposal builds an unsigned proposal for the given request.
// Nothing is returned unless every layer was assembled.
func CreateProposal(request ProposalRequest) (*pb.Proposal, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}

	ctx := request.Context
	opts := HeaderOpts{
		TxnID:       ctx.TransactionID(),
		ChannelID:   ctx.ChannelID(),
		ChaincodeID: request.ChaincodeID,
		Creator:     ctx.Creator(),
		MSPID:       ctx.MSPID(),
		Nonce:       ctx.Nonce(),
		Timestamp:   request.Timestamp,
	}

	logger.Debugf("creating proposal - txID: %s channelID: %s chaincode: %s lang: %s args: %d",
		opts.TxnID, opts.ChannelID, request.ChaincodeID.Name, request.Lang, len(request.Args))

	cis := CreateInvocationSpec(request.ChaincodeID, request.Lang, request.Args)

	header, err := CreateHeader(opts)
	if err != nil {
		return nil, errors.WithMessage(err, "header creation failed")
	}

	payload, err := CreateProposalPayload(cis)
	if err != nil {
		return nil, errors.WithMessage(err, "payload creation failed")
	}

	headerBytes, err := protoutil.Marshal(header)
	if err != nil {
		return nil, errors.Wrap(err, "marshal header failed")
	}
	payloadBytes, err := protoutil.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload failed")
	}

	return &pb.Proposal{Header: headerBytes, Payload: payloadBytes}, nil
}

// ProposalBuilder configures and builds a chaincode proposal. Setters may be
// called in any order and overwrite earlier values. A builder must not be
// used from multiple goroutines without external synchronization.
type ProposalBuilder struct {
	request ProposalRequest
}

// NewProposalBuilder returns a builder using DefaultLang.
func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{request: ProposalRequest{Lang: DefaultLang}}
}

// ChaincodeID sets the chaincode to invoke.
func (b *ProposalBuilder) ChaincodeID(ccID *pb.ChaincodeID) *ProposalBuilder {
	b.request.ChaincodeID = ccID
	return b
}

// Args sets the ordered invocation arguments.
func (b *ProposalBuilder) Args(args [][]byte) *ProposalBuilder {
	b.request.Args = args
	return b
}

// Context sets the transaction context.
func (b *ProposalBuilder) Context(ctx fab.TransactionContext) *ProposalBuilder {
	b.request.Context = ctx
	return b
}

// Lang overrides the chaincode language.
func (b *ProposalBuilder) Lang(lang pb.ChaincodeSpec_Type) *ProposalBuilder {
	b.request.Lang = lang
	return b
}

// Timestamp sets the channel header timestamp. Unset by default.
func (b *ProposalBuilder) Timestamp(ts time.Time) *ProposalBuilder {
	b.request.Timestamp = ts
	return b
}

// Build assembles the proposal from the configured values.
func (b *ProposalBuilder) Build() (*pb.Proposal, error) {
	return CreateProposal(b.request)
}
