/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"testing"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

func TestVerifyUserList(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		request batch.RequestKind
		want    verror.Code
	}{
		{name: "bare user", value: "alice", request: batch.RequestQueueJob, want: verror.OK},
		{name: "user at host", value: "alice@node1", request: batch.RequestQueueJob, want: verror.OK},
		{name: "several entries", value: "alice@node1,bob@node2", request: batch.RequestQueueJob, want: verror.OK},
		{name: "wildcard host", value: "alice@*", request: batch.RequestQueueJob, want: verror.OK},
		{name: "wildcard label in domain", value: "alice@*.cluster", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "wildcard rejected on select", value: "alice@*", request: batch.RequestSelectJobs, want: verror.BadValue},
		{name: "empty entry", value: "alice,,bob", request: batch.RequestQueueJob, want: verror.BadValue},
		{name: "empty", value: "", request: batch.RequestQueueJob, want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: tt.request},
				&batch.Attribute{Name: batch.AttrUserList, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("User_List %q under %v = %v, want %v", tt.value, tt.request, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyShellPathList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  verror.Code
	}{
		{name: "shell at host", value: "/bin/bash@node1", want: verror.OK},
		{name: "group entry", value: "+staff@node1", want: verror.OK},
		{name: "wildcard host", value: "/bin/sh@*", want: verror.OK},
		{name: "empty", value: "", want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
				&batch.Attribute{Name: batch.AttrShellPathList, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("Shell_Path_List %q = %v, want %v", tt.value, out.Code, tt.want)
			}
		})
	}
}

func TestVerifyDependListRewrites(t *testing.T) {
	out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
		&batch.Attribute{Name: batch.AttrDepend, Value: "afterok:123.server"})
	if !out.Passed() {
		t.Fatalf("depend failed: %+v", out)
	}
	if !out.Replaced || out.Rewritten != "afterok:123.server" {
		t.Fatalf("depend rewrite = (%v, %q), want the canonical list", out.Replaced, out.Rewritten)
	}

	out = verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
		&batch.Attribute{Name: batch.AttrDepend, Value: "sideways:123"})
	if out.Code != verror.BadValue {
		t.Fatalf("bad depend type = %v, want %v", out.Code, verror.BadValue)
	}
}

func TestVerifyDependTypeExpansion(t *testing.T) {
	out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
		&batch.Attribute{Name: batch.AttrDepend, Value: "AFTER:123"})
	if !out.Passed() {
		t.Fatalf("depend failed: %+v", out)
	}
	if out.Rewritten != "after:123" {
		t.Fatalf("depend expansion = %q, want %q", out.Rewritten, "after:123")
	}
}

func TestVerifyPathRewrites(t *testing.T) {
	out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
		&batch.Attribute{Name: batch.AttrOutputPath, Value: "node1:/scratch//out.log"})
	if !out.Passed() {
		t.Fatalf("path failed: %+v", out)
	}
	if !out.Replaced || out.Rewritten != "node1:/scratch/out.log" {
		t.Fatalf("path rewrite = (%v, %q), want cleaned path", out.Replaced, out.Rewritten)
	}
}

func TestVerifyStageList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  verror.Code
	}{
		{name: "single file", value: "data.in@node1:/store/data.in", want: verror.OK},
		{name: "several files", value: "a@n1:/s/a,b@n1:/s/b", want: verror.OK},
		{name: "missing remote", value: "data.in@node1", want: verror.BadValue},
		{name: "missing host", value: "data.in", want: verror.BadValue},
		{name: "empty", value: "", want: verror.BadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := verifyOne(t, batch.Context{Request: batch.RequestQueueJob},
				&batch.Attribute{Name: batch.AttrStageIn, Value: tt.value})
			if out.Code != tt.want {
				t.Errorf("stagein %q = %v, want %v", tt.value, out.Code, tt.want)
			}
		})
	}
}
