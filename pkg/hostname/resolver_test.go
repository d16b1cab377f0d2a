/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package hostname

import (
	"context"
	"testing"
)

func TestStaticResolver(t *testing.T) {
	r := &Static{
		Hosts: map[string]string{
			"host1": "host1.example.com",
		},
		LocalName: "host1.example.com",
	}

	ctx := context.Background()

	got, err := r.Canonical(ctx, "HOST1")
	if err != nil {
		t.Fatalf("Canonical(HOST1) error = %v", err)
	}
	if got != "host1.example.com" {
		t.Errorf("Canonical(HOST1) = %q, want host1.example.com", got)
	}

	if _, err := r.Canonical(ctx, "missing"); err == nil {
		t.Error("Canonical(missing) expected error, got nil")
	}

	local, err := r.Local(ctx)
	if err != nil {
		t.Fatalf("Local() error = %v", err)
	}
	if local != "host1.example.com" {
		t.Errorf("Local() = %q, want host1.example.com", local)
	}
}

func TestNetResolverCache(t *testing.T) {
	r := NewNetResolver(0)
	r.cache["host1"] = "host1.example.com"

	got, err := r.Canonical(context.Background(), "Host1")
	if err != nil {
		t.Fatalf("Canonical(Host1) error = %v", err)
	}
	if got != "host1.example.com" {
		t.Errorf("Canonical(Host1) = %q, want cached host1.example.com", got)
	}
}
