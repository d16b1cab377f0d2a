/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"path/filepath"
	"testing"
)

func TestPreparePath(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "absolute path", value: "/tmp/job.out", want: "/tmp/job.out"},
		{name: "cleaned path", value: "/tmp//a/../job.out", want: "/tmp/job.out"},
		{name: "host qualified", value: "host1:/tmp/job.out", want: "host1:/tmp/job.out"},
		{name: "empty", value: "", wantErr: true},
		{name: "host with empty path", value: "host1:", wantErr: true},
		{name: "bad host", value: "ho st:/tmp/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PreparePath(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PreparePath(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("PreparePath(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPreparePathRelative(t *testing.T) {
	got, err := PreparePath("job.out")
	if err != nil {
		t.Fatalf("PreparePath(relative) error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("PreparePath(relative) = %q, want an absolute path", got)
	}
	if filepath.Base(got) != "job.out" {
		t.Errorf("PreparePath(relative) = %q, want base job.out", got)
	}
}
