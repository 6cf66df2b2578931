/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	formatRaw    = "raw"
	formatHex    = "hex"
	formatBase64 = "base64"
)

func encode(b []byte, format string) ([]byte, error) {
	switch format {
	case formatRaw:
		return b, nil
	case formatHex:
		return []byte(hex.EncodeToString(b) + "\n"), nil
	case formatBase64:
		return []byte(base64.StdEncoding.EncodeToString(b) + "\n"), nil
	}
	return nil, errors.Errorf("unsupported format [%s]", format)
}

func decode(b []byte, format string) ([]byte, error) {
	switch format {
	case formatRaw:
		return b, nil
	case formatHex:
		return hex.DecodeString(string(bytes.TrimSpace(b)))
	case formatBase64:
		return base64.StdEncoding.DecodeString(string(bytes.TrimSpace(b)))
	}
	return nil, errors.Errorf("unsupported format [%s]", format)
}
