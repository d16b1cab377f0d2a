/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"fmt"
	"strings"
)

// AtList checks a comma-separated list of name[@host] entries, the common
// carrier for user lists, mail users, authorized users, and shell path
// lists.
//
// allowWildcardHost permits "*" as a host part. allowGroupSyntax permits
// entries whose name part starts with "+", designating a group rather
// than a user.
func AtList(list string, allowWildcardHost, allowGroupSyntax bool) error {
	if list == "" {
		return fmt.Errorf("empty at-list")
	}

	for entry := range strings.SplitSeq(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return fmt.Errorf("empty entry in at-list %q", list)
		}

		name := entry
		host := ""
		// The name part of a shell path list entry may itself contain
		// no '@', so the host is everything after the last one.
		if at := strings.LastIndexByte(entry, '@'); at >= 0 {
			name, host = entry[:at], entry[at+1:]
		}

		if name == "" || strings.ContainsAny(name, " \t") {
			return fmt.Errorf("bad name in at-list entry %q", entry)
		}
		if strings.HasPrefix(name, "+") && !allowGroupSyntax {
			return fmt.Errorf("group entry %q not allowed here", entry)
		}

		if host == "" {
			if strings.ContainsRune(entry, '@') {
				return fmt.Errorf("missing host in at-list entry %q", entry)
			}
			continue
		}
		if host == "*" {
			if !allowWildcardHost {
				return fmt.Errorf("wildcard host not allowed in entry %q", entry)
			}
			continue
		}
		if !validHostname(host) {
			return fmt.Errorf("bad host %q in at-list entry %q", host, entry)
		}
	}
	return nil
}

// validHostname checks hostname syntax: dot-separated labels of letters,
// digits, and hyphens, not beginning or ending with a hyphen.
func validHostname(host string) bool {
	if host == "" || len(host) > 255 {
		return false
	}
	for label := range strings.SplitSeq(host, ".") {
		if label == "" {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			case c == '-':
			default:
				return false
			}
		}
	}
	return true
}
