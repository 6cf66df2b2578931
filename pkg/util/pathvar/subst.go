/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pathvar

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// goPath returns the current GOPATH. If the system
// has multiple GOPATHs then the first is used.
func goPath() string {
	gps := filepath.SplitList(build.Default.GOPATH)
	if len(gps) == 0 {
		return ""
	}
	return gps[0]
}

// Subst replaces instances of '${VARNAME}' (eg ${GOPATH}) with the variable.
// Unknown variables are left untouched.
func Subst(path string) string {
	return SubstWithVars(path, nil)
}

// SubstWithVars is Subst with an extra variable table that is consulted
// before GOPATH and the environment.
func SubstWithVars(path string, vars map[string]string) string {
	const (
		sepPrefix = "${"
		sepSuffix = "}"
	)

	splits := strings.Split(path, sepPrefix)

	var sb strings.Builder

	// first split precedes the first sepPrefix so should always be written
	sb.WriteString(splits[0])

	for _, s := range splits[1:] {
		subst, rest := substVar(s, sepPrefix, sepSuffix, vars)
		sb.WriteString(subst)
		sb.WriteString(rest)
	}

	return sb.String()
}

// substVar searches for an instance of a variables name and replaces them with their value.
// The first return value is substituted portion of the string or noMatch if no replacement occurred.
// The second return value is the unconsumed portion of s.
func substVar(s string, noMatch string, sep string, vars map[string]string) (string, string) {
	endPos := strings.Index(s, sep)
	if endPos == -1 {
		return noMatch, s
	}

	v, ok := lookupVar(s[:endPos], vars)
	if !ok {
		return noMatch, s
	}

	return v, s[endPos+1:]
}

func lookupVar(v string, vars map[string]string) (string, bool) {
	if val, ok := vars[v]; ok {
		return val, true
	}
	if v == "GOPATH" {
		return goPath(), true
	}
	return os.LookupEnv(v)
}
