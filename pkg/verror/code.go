/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verror

import "fmt"

// Code classifies the result of verifying one attribute value.
type Code int

const (
	// OK means the value passed verification.
	OK Code = iota

	// BadValue means the value text is malformed or outside the
	// attribute's domain.
	BadValue

	// OutOfRange means a numeric or list bound was violated.
	OutOfRange

	// BadHost means an ACL host entry could not be resolved or does not
	// match the canonical local hostname.
	BadHost

	// SystemResource means a system-level resource (allocation, lookup
	// infrastructure) failed mid-verification.
	SystemResource

	// Internal means the caller violated the verification contract,
	// e.g. passed a nil attribute.
	Internal

	// JobNameTooLong means a job or reservation name exceeded the
	// maximum name length.
	JobNameTooLong

	// LicenseMinExceeded means the minimum-licenses attribute is
	// negative or above the configured license ceiling.
	LicenseMinExceeded

	// LicenseMaxExceeded means the maximum-licenses attribute is
	// negative or above the configured license ceiling.
	LicenseMaxExceeded

	// LicenseLingerInvalid means the license linger time is not
	// strictly positive.
	LicenseLingerInvalid
)

// codeText holds the canonical human-readable text per code. It is the
// fallback used when a delegate check fails without supplying a message.
var codeText = map[Code]string{
	OK:                   "no error",
	BadValue:             "illegal attribute or resource value",
	OutOfRange:           "requested value out of range",
	BadHost:              "access from host not allowed, or unknown host",
	SystemResource:       "system error occurred",
	Internal:             "internal verification error",
	JobNameTooLong:       "job name is too long",
	LicenseMinExceeded:   "license minimum exceeds available licenses",
	LicenseMaxExceeded:   "license maximum exceeds available licenses",
	LicenseLingerInvalid: "license linger time must be positive",
}

// Text returns the canonical text for the code.
func (c Code) Text() string {
	if t, ok := codeText[c]; ok {
		return t
	}
	return fmt.Sprintf("unknown verification code %d", int(c))
}

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case BadValue:
		return "BadValue"
	case OutOfRange:
		return "OutOfRange"
	case BadHost:
		return "BadHost"
	case SystemResource:
		return "SystemResource"
	case Internal:
		return "Internal"
	case JobNameTooLong:
		return "JobNameTooLong"
	case LicenseMinExceeded:
		return "LicenseMinExceeded"
	case LicenseMaxExceeded:
		return "LicenseMaxExceeded"
	case LicenseLingerInvalid:
		return "LicenseLingerInvalid"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}
