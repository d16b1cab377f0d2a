/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/parse"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// credNames are the recognized credential-type identifiers.
var credNames = []string{"aes", "dce-krb5", "krb5", "gridproxy"}

// foldEqual compares two strings under Unicode case folding.
func foldEqual(a, b string) bool {
	return cases.Fold().String(a) == cases.Fold().String(b)
}

// verifyJobName checks a job or reservation name. An empty name is
// tolerated when the request only inspects or selects existing objects;
// a leading digit is tolerated for submit, modify, reservation-submit,
// and select requests.
func (v *Verifier) verifyJobName(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		if vc.Request == batch.RequestStatusJob || vc.Request == batch.RequestSelectJobs {
			return verror.Pass()
		}
		return verror.Outcome{Code: verror.BadValue}
	}

	allowDigit := false
	switch vc.Request {
	case batch.RequestQueueJob, batch.RequestModifyJob,
		batch.RequestSubmitReservation, batch.RequestSelectJobs:
		allowDigit = true
	}

	switch parse.CheckName(attr.Value, allowDigit) {
	case parse.NameMalformed:
		return verror.Outcome{Code: verror.BadValue}
	case parse.NameTooLong:
		return verror.Outcome{Code: verror.JobNameTooLong}
	}
	return verror.Pass()
}

// verifyCheckpoint checks a checkpoint specification: a single character
// from {n,s,c,w,u}, or c=<digits> / w=<digits>. For select requests the
// literal "u" (unset) additionally needs an equality or inequality
// comparison.
func (v *Verifier) verifyCheckpoint(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	val := attr.Value
	if val == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	if len(val) == 1 {
		switch val[0] {
		case 'n', 's', 'c', 'w', 'u':
		default:
			return verror.Outcome{Code: verror.BadValue}
		}
	} else {
		if (val[0] != 'c' && val[0] != 'w') || val[1] != '=' {
			return verror.Outcome{Code: verror.BadValue}
		}
		digits := val[2:]
		if digits == "" {
			return verror.Outcome{Code: verror.BadValue}
		}
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return verror.Outcome{Code: verror.BadValue}
			}
		}
	}

	if vc.Request == batch.RequestSelectJobs && val == "u" {
		if attr.Op != batch.OpEQ && attr.Op != batch.OpNE {
			return verror.Outcome{Code: verror.BadValue}
		}
	}
	return verror.Pass()
}

// verifyHoldTypes checks hold flags: characters from {u,o,s,p,n}, with n
// exclusive against everything and p exclusive against everything.
func (v *Verifier) verifyHoldTypes(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	var u, o, s, p, n int
	for i := 0; i < len(attr.Value); i++ {
		switch attr.Value[i] {
		case 'u':
			u++
		case 'o':
			o++
		case 's':
			s++
		case 'p':
			p++
		case 'n':
			n++
		default:
			return verror.Outcome{Code: verror.BadValue}
		}
	}
	if n > 0 && u+o+s+p > 0 {
		return verror.Outcome{Code: verror.BadValue}
	}
	if p > 0 && u+o+s+n > 0 {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyJoinPath checks stdout/stderr join flags.
func (v *Verifier) verifyJoinPath(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	switch attr.Value {
	case "oe", "eo", "n":
		return verror.Pass()
	}
	return verror.Outcome{Code: verror.BadValue}
}

// verifyKeepFiles checks which output streams stay on the execution host.
func (v *Verifier) verifyKeepFiles(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	switch attr.Value {
	case "o", "e", "oe", "eo", "n":
		return verror.Pass()
	}
	return verror.Outcome{Code: verror.BadValue}
}

// verifyMailPoints checks mail notification points: characters from
// {a,b,e}, plus c for reservation submissions, or the literal "n".
// Leading whitespace is trimmed; the trimmed text replaces the value.
func (v *Verifier) verifyMailPoints(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	trimmed := strings.TrimLeft(attr.Value, " \t")
	if trimmed == "" {
		return verror.Outcome{Code: verror.BadValue}
	}

	if trimmed != "n" {
		for i := 0; i < len(trimmed); i++ {
			switch trimmed[i] {
			case 'a', 'b', 'e':
			case 'c':
				if vc.Request != batch.RequestSubmitReservation {
					return verror.Outcome{Code: verror.BadValue}
				}
			default:
				return verror.Outcome{Code: verror.BadValue}
			}
		}
	}

	if trimmed != attr.Value {
		return verror.Rewrite(trimmed)
	}
	return verror.Pass()
}

// verifyPriority checks job priority: an integer in [-1024, 1023].
// Select and status requests tolerate out-of-range values, which simply
// match nothing.
func (v *Verifier) verifyPriority(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	if n < -1024 || n > 1023 {
		if vc.Request.Selecting() || vc.Request.StatusOnly() {
			return verror.Pass()
		}
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifySandbox checks the job staging sandbox location.
func (v *Verifier) verifySandbox(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	for _, allowed := range []string{"HOME", "O_WORKDIR", "PRIVATE"} {
		if foldEqual(attr.Value, allowed) {
			return verror.Pass()
		}
	}
	return verror.Outcome{Code: verror.BadValue}
}

// verifyCredName checks a credential-type identifier.
func (v *Verifier) verifyCredName(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	for _, name := range credNames {
		if attr.Value == name {
			return verror.Pass()
		}
	}
	return verror.Outcome{Code: verror.BadValue}
}

// verifyZeroOrPositive accepts integers of at least zero.
func (v *Verifier) verifyZeroOrPositive(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil || n < 0 {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyNonZeroPositive accepts strictly positive integers.
func (v *Verifier) verifyNonZeroPositive(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil || n <= 0 {
		return verror.Outcome{Code: verror.BadValue}
	}
	return verror.Pass()
}

// verifyLicenseMin checks the minimum-licenses attribute against the
// configured ceiling.
func (v *Verifier) verifyLicenseMin(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil || n < 0 || n > v.maxLicenses {
		return verror.Outcome{Code: verror.LicenseMinExceeded}
	}
	return verror.Pass()
}

// verifyLicenseMax checks the maximum-licenses attribute against the
// configured ceiling.
func (v *Verifier) verifyLicenseMax(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil || n < 0 || n > v.maxLicenses {
		return verror.Outcome{Code: verror.LicenseMaxExceeded}
	}
	return verror.Pass()
}

// verifyLicenseLinger checks the license linger time, which must be
// strictly positive.
func (v *Verifier) verifyLicenseLinger(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil || n <= 0 {
		return verror.Outcome{Code: verror.LicenseLingerInvalid}
	}
	return verror.Pass()
}

// verifyQueueType accepts a case-insensitive prefix of "Execution" or
// "Route".
func (v *Verifier) verifyQueueType(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	folded := cases.Fold().String(attr.Value)
	for _, name := range []string{"Execution", "Route"} {
		if strings.HasPrefix(cases.Fold().String(name), folded) {
			return verror.Pass()
		}
	}
	return verror.Outcome{Code: verror.BadValue}
}

// verifyJobState checks job state filter flags. An empty filter is
// tolerated only when the request reads job status.
func (v *Verifier) verifyJobState(_ context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		if vc.Request == batch.RequestStatusJob {
			return verror.Pass()
		}
		return verror.Outcome{Code: verror.BadValue}
	}
	for i := 0; i < len(attr.Value); i++ {
		if !strings.ContainsRune("EHQRTWSUBXFM", rune(attr.Value[i])) {
			return verror.Outcome{Code: verror.BadValue}
		}
	}
	return verror.Pass()
}

// verifyArrayRange checks a job array range submitted with -J.
func (v *Verifier) verifyArrayRange(_ context.Context, _ batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr.Value == "" {
		return verror.Outcome{Code: verror.BadValue}
	}
	switch parse.CheckArrayRange(attr.Value) {
	case parse.RangeMalformed:
		return verror.Outcome{Code: verror.BadValue}
	case parse.RangeOutOfBounds:
		return verror.Outcome{Code: verror.OutOfRange}
	}
	return verror.Pass()
}
