/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/parse"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// verifySelect verifies a chunked select specification such as
// "2:ncpus=4+1:ncpus=2". Chunks are visited left to right so a failure is
// always attributed to the first offending resource pair; that pair's
// outcome short-circuits the whole spec. A chunk that does not parse is a
// plain bad value.
func (v *Verifier) verifySelect(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	for chunk := range parse.Chunks(attr.Value) {
		_, pairs, err := parse.ParseChunk(chunk)
		if err != nil {
			return verror.Outcome{Code: verror.BadValue}
		}
		for _, kv := range pairs {
			out := v.VerifyResource(vc, &batch.Attribute{
				Name:     attr.Name,
				Resource: kv.Key,
				Value:    kv.Value,
				Op:       attr.Op,
			})
			if !out.Passed() {
				return out
			}
		}
	}
	return verror.Pass()
}
