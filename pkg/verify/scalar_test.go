/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"testing"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

func verifyOne(t *testing.T, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	t.Helper()
	return New().Verify(context.Background(), vc, attr)
}

func TestVerifyHoldTypes(t *testing.T) {
	tests := []struct {
		value string
		want  verror.Code
	}{
		{"u", verror.OK},
		{"uo", verror.OK},
		{"uos", verror.OK},
		{"n", verror.OK},
		{"p", verror.OK},
		{"un", verror.BadValue},
		{"np", verror.BadValue},
		{"pu", verror.BadValue},
		{"x", verror.BadValue},
		{"", verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
				&batch.Attribute{Name: batch.AttrHoldTypes, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("hold %q = %v, want %v", tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		want    verror.Code
	}{
		{name: "in range", value: "100", request: batch.RequestQueueJob, want: verror.OK},
		{name: "lower bound", value: "-1024", request: batch.RequestQueueJob, want: verror.OK},
		{name: "upper bound", value: "1023", request: batch.RequestQueueJob, want: verror.OK},
		{name: "below range", value: "-1025", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "above range", value: "1024", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "above range tolerated on select", value: "5000", request: batch.RequestSelectJobs, want: verror.OK},
		{name: "above range tolerated on status", value: "5000", request: batch.RequestStatusJob, want: verror.OK},
		{name: "not a number", value: "high", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "empty", value: "", request: batch.RequestQueueJob, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrPriority, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("priority %q under %v = %v, want %v", tt.value, tt.request, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyCheckpoint(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		op      batch.Operator
		want    verror.Code
	}{
		{name: "interval", value: "c=10", request: batch.RequestQueueJob, want: verror.OK},
		{name: "wall interval", value: "w=30", request: batch.RequestQueueJob, want: verror.OK},
		{name: "single w", value: "w", request: batch.RequestQueueJob, want: verror.OK},
		{name: "single u", value: "u", request: batch.RequestQueueJob, want: verror.OK},
		{name: "trailing garbage", value: "c=10a", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "unknown flag", value: "x", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "missing digits", value: "c=", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "select u with eq", value: "u", request: batch.RequestSelectJobs, op: batch.OpEQ, want: verror.OK},
		{name: "select u with ne", value: "u", request: batch.RequestSelectJobs, op: batch.OpNE, want: verror.OK},
		{name: "select u with ge", value: "u", request: batch.RequestSelectJobs, op: batch.OpGE, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrCheckpoint, Value: tt.value, Op: tt.op})
			if out.Code != tt.want {
				t.Errorf("checkpoint %q = %v, want %v", tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyJobName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		want    verror.Code
	}{
		{name: "plain", value: "myjob", request: batch.RequestQueueJob, want: verror.OK},
		{name: "leading digit on submit", value: "1job", request: batch.RequestQueueJob, want: verror.OK},
		{name: "leading digit on manager", value: "1job", request: batch.RequestManager, want: verror.BadValue},
		{name: "empty on status", value: "", request: batch.RequestStatusJob, want: verror.OK},
		{name: "empty on select", value: "", request: batch.RequestSelectJobs, want: verror.OK},
		{name: "empty on submit", value: "", request: batch.RequestQueueJob, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrJobName, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("job name %q under %v = %v, want %v", tt.value, tt.request, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyMailPoints(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		want    verror.Code
		rewrite string
	}{
		{name: "abe", value: "abe", request: batch.RequestQueueJob, want: verror.OK},
		{name: "none literal", value: "n", request: batch.RequestQueueJob, want: verror.OK},
		{name: "confirm on reservation", value: "bc", request: batch.RequestSubmitReservation, want: verror.OK},
		{name: "confirm on job", value: "bc", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "leading space trimmed", value: "  ab", request: batch.RequestQueueJob, want: verror.OK, rewrite: "ab"},
		{name: "only spaces", value: "   ", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "bad flag", value: "az", request: batch.RequestQueueJob, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrMailPoints, Value: tt.value})
			if out.Code != tt.want {
				t.Fatalf("mail points %q = %v, want %v", tt.value, out.Code, tt.want)
			}
			if tt.rewrite != "" {
				if !out.Replaced || out.Rewritten != tt.rewrite {
					t.Errorf("mail points %q rewrite = (%v, %q), want (true, %q)",
						tt.value, out.Replaced, out.Rewritten, tt.rewrite)
				}
			}
		})
	}
}

func TestVerifySandbox(t *testing.T) {
	for _, v := range []string{"HOME", "home", "O_WORKDIR", "o_workdir", "PRIVATE", "Private"} {
		out := verifyOne(t, batch.Context{}, &batch.Attribute{Name: batch.AttrSandbox, Value: v})
		if out.Code != verror.OK {
			t.Errorf("sandbox %q = %v, want OK", v, out.Code)
		}
	}
	for _, v := range []string{"", "SHARED", "WORKDIR"} {
		out := verifyOne(t, batch.Context{}, &batch.Attribute{Name: batch.AttrSandbox, Value: v})
		if out.Code != verror.BadValue {
			t.Errorf("sandbox %q = %v, want BadValue", v, out.Code)
		}
	}
}

func TestVerifyQueueType(t *testing.T) {
	for _, v := range []string{"Execution", "execution", "E", "exec", "Route", "r", "ROUTE"} {
		out := verifyOne(t, batch.Context{}, &batch.Attribute{Name: batch.AttrQueueType, Value: v})
		if out.Code != verror.OK {
			t.Errorf("queue type %q = %v, want OK", v, out.Code)
		}
	}
	for _, v := range []string{"", "Executionx", "routing", "batch"} {
		out := verifyOne(t, batch.Context{}, &batch.Attribute{Name: batch.AttrQueueType, Value: v})
		if out.Code != verror.BadValue {
			t.Errorf("queue type %q = %v, want BadValue", v, out.Code)
		}
	}
}

func TestVerifyJobState(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		want    verror.Code
	}{
		{name: "all flags", value: "EHQRTWSUBXFM", request: batch.RequestStatusJob, want: verror.OK},
		{name: "subset", value: "QR", request: batch.RequestSelectJobs, want: verror.OK},
		{name: "lowercase rejected", value: "qr", request: batch.RequestSelectJobs, want: verror.BadValue},
		{name: "empty on status", value: "", request: batch.RequestStatusJob, want: verror.OK},
		{name: "empty on select", value: "", request: batch.RequestSelectJobs, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrJobState, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("job state %q = %v, want %v", tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyLicenses(t *testing.T) {
	v := New(WithMaxLicenses(512))
	vc := batch.Context{Request: batch.RequestManager}
	ctx := context.Background()

	tests := []struct {
		name  string
		attr  string
		value string
		want  verror.Code
	}{
		{name: "min ok", attr: batch.AttrLicenseMin, value: "0", want: verror.OK},
		{name: "min over ceiling", attr: batch.AttrLicenseMin, value: "513", want: verror.LicenseMinExceeded},
		{name: "min negative", attr: batch.AttrLicenseMin, value: "-1", want: verror.LicenseMinExceeded},
		{name: "max ok", attr: batch.AttrLicenseMax, value: "512", want: verror.OK},
		{name: "max over ceiling", attr: batch.AttrLicenseMax, value: "100000", want: verror.LicenseMaxExceeded},
		{name: "linger ok", attr: batch.AttrLicenseLinger, value: "60", want: verror.OK},
		{name: "linger zero", attr: batch.AttrLicenseLinger, value: "0", want: verror.LicenseLingerInvalid},
		{name: "linger negative", attr: batch.AttrLicenseLinger, value: "-5", want: verror.LicenseLingerInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := v.Verify(ctx, vc, &batch.Attribute{Name: tt.attr, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("%s=%q = %v, want %v", tt.attr, tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyIntegerAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value string
		want  verror.Code
	}{
		{name: "retry zero", attr: batch.AttrCommRetry, value: "0", want: verror.OK},
		{name: "retry positive", attr: batch.AttrCommRetry, value: "10", want: verror.OK},
		{name: "retry negative", attr: batch.AttrCommRetry, value: "-1", want: verror.BadValue},
		{name: "retry garbage", attr: batch.AttrCommRetry, value: "ten", want: verror.BadValue},
		{name: "highwater positive", attr: batch.AttrCommHighwater, value: "1", want: verror.OK},
		{name: "highwater zero", attr: batch.AttrCommHighwater, value: "0", want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{}, &batch.Attribute{Name: tt.attr, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("%s=%q = %v, want %v", tt.attr, tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyIdempotent(t *testing.T) {
	v := New()
	vc := batch.Context{Request: batch.RequestQueueJob}
	attr := &batch.Attribute{Name: batch.AttrHoldTypes, Value: "uo"}

	first := v.Verify(context.Background(), vc, attr)
	second := v.Verify(context.Background(), vc, attr)
	if first != second {
		t.Errorf("repeated verification differs: %+v vs %+v", first, second)
	}
	if attr.Value != "uo" {
		t.Errorf("verification mutated the attribute value to %q", attr.Value)
	}
}
