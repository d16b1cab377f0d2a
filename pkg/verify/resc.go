/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"fmt"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/resource"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// VerifyResource verifies the datatype and value of one resource-tagged
// attribute. An attribute without a resource passes trivially. An unknown
// resource also passes: custom resources are known only to the server and
// are verified there, not here. When a definition is found, its datatype
// capability runs first and its value capability only on success. A
// failure that carries no delegate message is reported as the code's
// canonical text plus "name.resource".
func (v *Verifier) VerifyResource(vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr == nil {
		return verror.Fail(verror.Internal)
	}
	if attr.Resource == "" {
		return verror.Pass()
	}

	def, ok := v.resources.Lookup(attr.Resource)
	if !ok {
		return verror.Pass()
	}

	pair := &batch.Attribute{Name: attr.Resource, Value: attr.Value, Op: attr.Op}
	out := checkPair(def, vc, pair)
	if !out.Passed() && out.Message == "" {
		out.Message = fmt.Sprintf("%s %s.%s", out.Code.Text(), attr.Name, attr.Resource)
	}
	return out
}

// checkPair composes a definition's optional capabilities: datatype
// first, value second, short-circuiting on the first failure. No message
// is synthesized here; callers differ in how they attribute failures.
func checkPair(def *resource.Definition, vc batch.Context, pair *batch.Attribute) verror.Outcome {
	if def.VerifyDatatype != nil {
		if code := def.VerifyDatatype(pair); code != verror.OK {
			return verror.Outcome{Code: code}
		}
	}
	if def.VerifyValue != nil {
		return def.VerifyValue(vc, pair)
	}
	return verror.Pass()
}

// verifyResourceList is the registry entry for Resource_List attributes.
func (v *Verifier) verifyResourceList(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	return v.VerifyResource(vc, attr)
}
