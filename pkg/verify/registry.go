/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// validator is one entry point of the verification engine.
type validator func(*Verifier, context.Context, batch.Context, *batch.Attribute) verror.Outcome

// registry maps attribute names to their validators. The attribute set is
// fixed at build time; there is no dynamic registration.
var registry = map[string]validator{
	batch.AttrUserList:        (*Verifier).verifyUserList,
	batch.AttrGroupList:       (*Verifier).verifyUserList,
	batch.AttrAuthUsers:       (*Verifier).verifyAuthorizedUsers,
	batch.AttrAuthGroups:      (*Verifier).verifyAuthorizedUsers,
	batch.AttrDepend:          (*Verifier).verifyDependList,
	batch.AttrOutputPath:      (*Verifier).verifyPath,
	batch.AttrErrorPath:       (*Verifier).verifyPath,
	batch.AttrArrayIndices:    (*Verifier).verifyArrayRange,
	batch.AttrJobName:         (*Verifier).verifyJobName,
	batch.AttrReservationName: (*Verifier).verifyJobName,
	batch.AttrCheckpoint:      (*Verifier).verifyCheckpoint,
	batch.AttrHoldTypes:       (*Verifier).verifyHoldTypes,
	batch.AttrJoinPath:        (*Verifier).verifyJoinPath,
	batch.AttrKeepFiles:       (*Verifier).verifyKeepFiles,
	batch.AttrMailPoints:      (*Verifier).verifyMailPoints,
	batch.AttrMailUsers:       (*Verifier).verifyMailUsers,
	batch.AttrShellPathList:   (*Verifier).verifyShellPathList,
	batch.AttrPriority:        (*Verifier).verifyPriority,
	batch.AttrSandbox:         (*Verifier).verifySandbox,
	batch.AttrStageIn:         (*Verifier).verifyStageList,
	batch.AttrStageOut:        (*Verifier).verifyStageList,
	batch.AttrCredName:        (*Verifier).verifyCredName,
	batch.AttrResourceList:    (*Verifier).verifyResourceList,
	batch.AttrSelect:          (*Verifier).verifySelect,
	batch.AttrPreemptTargets:  (*Verifier).verifyPreemptTargets,
	batch.AttrManagers:        (*Verifier).verifyManagerACL,
	batch.AttrOperators:       (*Verifier).verifyManagerACL,
	batch.AttrQueueType:       (*Verifier).verifyQueueType,
	batch.AttrJobState:        (*Verifier).verifyJobState,
	batch.AttrLicenseMin:      (*Verifier).verifyLicenseMin,
	batch.AttrLicenseMax:      (*Verifier).verifyLicenseMax,
	batch.AttrLicenseLinger:   (*Verifier).verifyLicenseLinger,
	batch.AttrCommRetry:       (*Verifier).verifyZeroOrPositive,
	batch.AttrCommHighwater:   (*Verifier).verifyNonZeroPositive,
}

// Registered returns the attribute names with a validator, sorted.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup reports whether the attribute name has a validator. For an
// unknown name it also returns the closest registered name, if one is
// within a small edit distance, for "did you mean" diagnostics.
func Lookup(name string) (known bool, suggestion string) {
	if _, ok := registry[name]; ok {
		return true, ""
	}

	const maxDistance = 3
	best := maxDistance + 1
	for candidate := range registry {
		if d := levenshtein.ComputeDistance(name, candidate); d < best {
			best = d
			suggestion = candidate
		}
	}
	return false, suggestion
}
