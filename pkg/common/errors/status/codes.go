/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown
	Unknown Code = 1

	// MissingConfiguration is returned when a required builder field
	// (chaincode ID, transaction context) was never set
	MissingConfiguration Code = 2

	// MalformedInput is returned when a value required to assemble a header
	// (transaction ID, channel, creator, MSP ID, nonce) is empty
	MalformedInput Code = 3

	// InvalidConfig is returned when configuration cannot be loaded or decoded
	InvalidConfig Code = 4
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0: "OK",
	1: "UNKNOWN",
	2: "MISSING_CONFIGURATION",
	3: "MALFORMED_INPUT",
	4: "INVALID_CONFIG",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}
