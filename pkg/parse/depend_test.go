/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"strings"
	"testing"
)

func TestDependList(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    string
		wantErr bool
	}{
		{name: "single after", list: "afterok:123", want: "afterok:123"},
		{name: "multiple jobs", list: "after:123:456", want: "after:123:456"},
		{name: "multiple clauses", list: "afterok:123,beforeany:456", want: "afterok:123,beforeany:456"},
		{name: "type case folded", list: "AfterOK:123", want: "afterok:123"},
		{name: "whitespace stripped", list: " afterok : 123 ", want: "afterok:123"},
		{name: "array job id", list: "afterok:123[]", want: "afterok:123[]"},
		{name: "qualified job id", list: "afterok:123.host.example.com", want: "afterok:123.host.example.com"},
		{name: "on with count", list: "on:2", want: "on:2"},
		{name: "empty list", list: "", wantErr: true},
		{name: "unknown type", list: "sometime:123", wantErr: true},
		{name: "missing argument", list: "afterok", wantErr: true},
		{name: "bad job id", list: "afterok:abc", wantErr: true},
		{name: "on with non-numeric count", list: "on:x", wantErr: true},
		{name: "on with zero count", list: "on:0", wantErr: true},
		{name: "on with two counts", list: "on:1:2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DependList(tt.list)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DependList(%q) error = %v, wantErr %v", tt.list, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DependList(%q) = %q, want %q", tt.list, got, tt.want)
			}
		})
	}
}

func TestDependListCapacity(t *testing.T) {
	long := "after:" + strings.Repeat("123:", DependLen/4) + "123"
	if _, err := DependList(long); err == nil {
		t.Errorf("DependList accepted an expansion beyond %d characters", DependLen)
	}
}
