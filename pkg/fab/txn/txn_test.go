/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package txn

import (
	"time"

	"github.com/hyperledger/fabric-protos-go/common"

	"github.com/hyperledger/fabric-proposal-go/pkg/util/protoutil"
)

var zeroTime time.Time

// headerBytes returns the canonical encoding of a header
func headerBytes(hdr *common.Header) ([]byte, error) {
	return protoutil.Marshal(hdr)
}
