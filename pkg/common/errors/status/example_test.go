/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import "fmt"

func Example() {
	// Status errors are returned by the proposal builders for caller mistakes
	statusError := New(ProposalBuilderStatus, MissingConfiguration.ToInt32(), "transaction context is required", nil)

	// Status errors implement the standard error interface and are returned as regular errors
	err := interface{}(statusError).(error)

	// A user can extract status information from a status
	status, ok := FromError(err)
	fmt.Println(ok)
	fmt.Println(status.Group)
	fmt.Println(Code(status.Code))
	fmt.Println(status.Message)

	// Output:
	// true
	// Proposal Builder Status
	// MISSING_CONFIGURATION
	// transaction context is required
}
