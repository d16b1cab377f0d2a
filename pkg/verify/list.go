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

// verifyUserList checks user/group list attributes. Wildcard hosts are
// allowed except when the request selects jobs, where an entry must name
// a concrete host to match against.
func (v *Verifier) verifyUserList(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	wildcard := vc.Request != batch.RequestSelectJobs
	if err := parse.AtList(attr.Value, wildcard, false); err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyAuthorizedUsers checks reservation authorized-user/group lists.
func (v *Verifier) verifyAuthorizedUsers(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	if err := parse.AtList(attr.Value, false, false); err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyMailUsers checks the mail recipient list.
func (v *Verifier) verifyMailUsers(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	if err := parse.AtList(attr.Value, false, false); err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyShellPathList checks the shell path list, which may carry both
// wildcard hosts and group entries.
func (v *Verifier) verifyShellPathList(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	if err := parse.AtList(attr.Value, true, true); err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyDependList checks a job dependency list and reports the expanded
// canonical form as a replacement value.
func (v *Verifier) verifyDependList(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	expanded, err := parse.DependList(attr.Value)
	if err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Rewrite(expanded)
}

// verifyPath checks an output/error path and reports the prepared
// (normalized, host-qualified) form as a replacement value.
func (v *Verifier) verifyPath(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	prepared, err := parse.PreparePath(attr.Value)
	if err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Rewrite(prepared)
}

// verifyStageList checks a stage-in/stage-out file list.
func (v *Verifier) verifyStageList(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	if err := parse.StageList(attr.Value); err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}
