/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

// MaxNameLen is the maximum length of a job or reservation name.
const MaxNameLen = 236

// NameResult classifies a job/reservation name check.
type NameResult int

const (
	NameOK NameResult = iota
	NameMalformed
	NameTooLong
)

// CheckName verifies a job or reservation name: printable name characters
// only, length-limited, and a leading digit only when the request kind
// permits it.
func CheckName(name string, allowLeadingDigit bool) NameResult {
	if name == "" {
		return NameMalformed
	}
	if len(name) > MaxNameLen {
		return NameTooLong
	}

	first := name[0]
	switch {
	case first >= 'a' && first <= 'z', first >= 'A' && first <= 'Z':
	case first >= '0' && first <= '9':
		if !allowLeadingDigit {
			return NameMalformed
		}
	default:
		return NameMalformed
	}

	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '+' || c == '.':
		default:
			return NameMalformed
		}
	}
	return NameOK
}
