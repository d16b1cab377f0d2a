/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// verifyManagerACL verifies manager/operator ACL entries: a comma
// separated list of user@host pairs. The host part must be "*" or must
// resolve to the canonical local hostname, compared case-insensitively.
// The first failing entry rejects the whole list.
func (v *Verifier) verifyManagerACL(ctx context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	for entry := range strings.SplitSeq(attr.Value, ",") {
		entry = strings.TrimSpace(entry)

		at := strings.IndexByte(entry, '@')
		if at < 0 {
			return verror.Failf(verror.BadHost,
				fmt.Sprintf("ACL entry %q lacks a host part", entry))
		}
		host := entry[at+1:]
		if host == "*" {
			continue
		}

		canonical, err := v.resolver.Canonical(ctx, host)
		if err != nil {
			return verror.Failf(verror.BadHost,
				fmt.Sprintf("cannot resolve host %q in ACL entry", host))
		}
		local, err := v.resolver.Local(ctx)
		if err != nil {
			return verror.Failf(verror.BadHost, "cannot determine local hostname")
		}
		if !strings.EqualFold(canonical, local) {
			return verror.Failf(verror.BadHost,
				fmt.Sprintf("host %q is not the local host", host))
		}
	}
	return verror.Pass()
}
