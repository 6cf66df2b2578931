/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"strings"

	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

// DefaultLang is the chaincode runtime used unless overridden.
const DefaultLang = pb.ChaincodeSpec_GOLANG

// CreateInvocationSpec describes the chaincode to execute. The chaincode ID,
// language and arguments are embedded verbatim; argument order is preserved.
func CreateInvocationSpec(ccID *pb.ChaincodeID, lang pb.ChaincodeSpec_Type, args [][]byte) *pb.ChaincodeInvocationSpec {
	return &pb.ChaincodeInvocationSpec{
		ChaincodeSpec: &pb.ChaincodeSpec{
			Type:        lang,
			ChaincodeId: ccID,
			Input:       &pb.ChaincodeInput{Args: args},
		},
	}
}

// ParseLang returns the chaincode language for a case-insensitive name
// such as "golang", "node" or "java".
func ParseLang(name string) (pb.ChaincodeSpec_Type, error) {
	if name == "" {
		return DefaultLang, nil
	}
	lang, ok := pb.ChaincodeSpec_Type_value[strings.ToUpper(name)]
	if !ok {
		return pb.ChaincodeSpec_UNDEFINED, errors.Errorf("unsupported chaincode language [%s]", name)
	}
	return pb.ChaincodeSpec_Type(lang), nil
}
