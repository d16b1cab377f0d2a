/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"strings"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// TargetNone is the sentinel disabling preemption targets.
const TargetNone = "NONE"

// verifyPreemptTargets verifies a preemption-targets expression: a
// comma-delimited mix of Resource_List.<resource>=<value> and
// queue=<value> tokens, or the sole sentinel NONE.
//
// Scanning is non-destructive slicing over the immutable value. The
// Resource_List key is matched case-sensitively and must be followed by a
// dot; the queue key is matched case-insensitively against a byte-wise
// lowered copy so the offsets stay aligned with the original text, from
// which the values themselves are taken. An extracted resource name that
// is not in the table is skipped rather than rejected: custom resources
// cannot be typed here. At least one recognized key must appear.
func (v *Verifier) verifyPreemptTargets(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	val := strings.TrimLeft(attr.Value, " \t")
	if len(val) >= len(TargetNone) && strings.EqualFold(val[:len(TargetNone)], TargetNone) {
		if val != TargetNone {
			return verror.Outcome{Code: verror.BadValue}
		}
		return verror.Pass()
	}

	found := false

	// Pass one: Resource_List.<resource>=<value> tokens.
	rlKey := batch.AttrResourceList
	for i := 0; ; {
		rel := strings.Index(val[i:], rlKey)
		if rel < 0 {
			break
		}
		pos := i + rel
		found = true

		dot := pos + len(rlKey)
		if dot >= len(val) || val[dot] != '.' {
			// A Resource_List occurrence not followed by a dot is a
			// malformed token, not an unrecognized one.
			return verror.Outcome{Code: verror.BadValue}
		}

		nameStart := dot + 1
		eqRel := strings.IndexByte(val[nameStart:], '=')
		if eqRel < 0 {
			return verror.Outcome{Code: verror.BadValue}
		}
		name := val[nameStart : nameStart+eqRel]
		value := val[nameStart+eqRel+1:]
		if c := strings.IndexByte(value, ','); c >= 0 {
			value = value[:c]
		}

		def, ok := v.resources.Lookup(name)
		if !ok {
			i = nameStart
			continue
		}

		out := checkPair(def, vc, &batch.Attribute{Name: name, Value: value, Op: attr.Op})
		if !out.Passed() {
			if out.Message == "" {
				out.Message = out.Code.Text()
			}
			return out
		}
		i = nameStart + eqRel
	}

	// Pass two: queue=<value> tokens, key matched case-insensitively.
	qKey := batch.AttrQueue
	lower := asciiLower(val)
	for i := 0; ; {
		rel := strings.Index(lower[i:], qKey)
		if rel < 0 {
			break
		}
		pos := i + rel
		found = true

		eqRel := strings.IndexByte(val[pos:], '=')
		if eqRel < 0 {
			return verror.Outcome{Code: verror.BadValue}
		}
		name := lower[pos : pos+eqRel]
		value := val[pos+eqRel+1:]
		if c := strings.IndexByte(value, ','); c >= 0 {
			value = value[:c]
		}

		def, ok := v.resvAttrs.Lookup(name)
		if !ok {
			i = pos + len(qKey)
			continue
		}

		out := checkPair(def, vc, &batch.Attribute{Name: name, Value: value, Op: attr.Op})
		if !out.Passed() {
			if out.Message == "" {
				out.Message = out.Code.Text()
			}
			return out
		}
		i = pos + eqRel
	}

	if !found {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// asciiLower lowers ASCII letters byte by byte, preserving length and
// offsets relative to the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
