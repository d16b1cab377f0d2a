/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// DependLen is the capacity of an expanded dependency list.
const DependLen = 2040

// dependTypes are the recognized dependency kinds. The value records
// whether the kind takes job identifiers (true) or a numeric count.
var dependTypes = map[string]bool{
	"after":       true,
	"afterok":     true,
	"afterany":    true,
	"afternotok":  true,
	"before":      true,
	"beforeok":    true,
	"beforeany":   true,
	"beforenotok": true,
	"on":          false,
}

// DependList parses a job dependency list of the form
//
//	type:arg[:arg...][,type:arg...]
//
// and returns the canonical expansion: whitespace stripped, type names
// lower-cased, separators normalized. The expansion replaces the
// submitted value on success. An expansion longer than DependLen is
// rejected.
func DependList(list string) (string, error) {
	if list == "" {
		return "", fmt.Errorf("empty dependency list")
	}

	var out []string
	for clause := range strings.SplitSeq(list, ",") {
		clause = strings.TrimSpace(clause)
		fields := strings.Split(clause, ":")
		kind := strings.ToLower(strings.TrimSpace(fields[0]))

		wantsJobs, ok := dependTypes[kind]
		if !ok {
			return "", fmt.Errorf("unknown dependency type %q", fields[0])
		}
		if len(fields) < 2 {
			return "", fmt.Errorf("dependency %q has no argument", clause)
		}

		args := make([]string, 0, len(fields)-1)
		for _, arg := range fields[1:] {
			arg = strings.TrimSpace(arg)
			if wantsJobs {
				if !validJobID(arg) {
					return "", fmt.Errorf("bad job identifier %q in dependency %q", arg, clause)
				}
			} else {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 1 {
					return "", fmt.Errorf("bad count %q in dependency %q", arg, clause)
				}
			}
			args = append(args, arg)
		}
		if !wantsJobs && len(args) != 1 {
			return "", fmt.Errorf("dependency %q takes exactly one count", clause)
		}

		out = append(out, kind+":"+strings.Join(args, ":"))
	}

	expanded := strings.Join(out, ",")
	if len(expanded) > DependLen {
		return "", fmt.Errorf("dependency list exceeds %d characters", DependLen)
	}
	return expanded, nil
}

// validJobID accepts a sequence number, optionally with an array marker
// and a server suffix: 123, 123[], 123[].host.domain, 123.host.
func validJobID(id string) bool {
	if id == "" {
		return false
	}
	i := 0
	for i < len(id) && id[i] >= '0' && id[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	if strings.HasPrefix(id[i:], "[]") {
		i += 2
	}
	if i == len(id) {
		return true
	}
	if id[i] != '.' {
		return false
	}
	return validHostname(id[i+1:])
}
