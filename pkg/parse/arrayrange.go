/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"strconv"
	"strings"
)

// MaxArrayIndex bounds job array subscripts.
const MaxArrayIndex = 1 << 30

// RangeResult classifies a job array range check.
type RangeResult int

const (
	RangeOK RangeResult = iota
	RangeMalformed
	RangeOutOfBounds
)

// CheckArrayRange verifies a job array range of the form start-end[:step].
// Syntax errors report RangeMalformed; a parseable range whose bounds are
// inconsistent (negative start, end not past start, step below one, or an
// index beyond MaxArrayIndex) reports RangeOutOfBounds.
func CheckArrayRange(value string) RangeResult {
	spec := value
	step := 1

	if i := strings.IndexByte(spec, ':'); i >= 0 {
		n, err := strconv.Atoi(spec[i+1:])
		if err != nil {
			return RangeMalformed
		}
		step = n
		spec = spec[:i]
	}

	dash := strings.IndexByte(spec, '-')
	if dash <= 0 {
		return RangeMalformed
	}
	start, err := strconv.Atoi(spec[:dash])
	if err != nil {
		return RangeMalformed
	}
	end, err := strconv.Atoi(spec[dash+1:])
	if err != nil {
		return RangeMalformed
	}

	if start < 0 || end <= start || step < 1 || end > MaxArrayIndex {
		return RangeOutOfBounds
	}
	return RangeOK
}
