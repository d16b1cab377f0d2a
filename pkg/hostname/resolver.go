/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package hostname resolves host names to their canonical form for ACL
// verification. The default resolver wraps the system resolver with a
// small cache and a rate limit so that verifying a large ACL does not
// hammer DNS.
package hostname

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// Resolver resolves host names to canonical fully qualified form.
type Resolver interface {
	// Canonical returns the canonical name for host.
	Canonical(ctx context.Context, host string) (string, error)

	// Local returns the canonical name of the local host.
	Local(ctx context.Context) (string, error)
}

// NetResolver is the default Resolver backed by the system resolver.
type NetResolver struct {
	limiter *rate.Limiter

	mu    sync.Mutex
	cache map[string]string
	local string
}

// NewNetResolver creates a NetResolver. lookupsPerSecond bounds the rate
// of uncached lookups; zero or negative means no limit.
func NewNetResolver(lookupsPerSecond float64) *NetResolver {
	limit := rate.Inf
	if lookupsPerSecond > 0 {
		limit = rate.Limit(lookupsPerSecond)
	}
	return &NetResolver{
		limiter: rate.NewLimiter(limit, 1),
		cache:   make(map[string]string),
	}
}

// Canonical implements Resolver. Successful resolutions are cached for
// the lifetime of the resolver.
func (r *NetResolver) Canonical(ctx context.Context, host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("empty host")
	}

	key := strings.ToLower(host)
	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for lookup slot: %w", err)
	}

	canonical, err := net.DefaultResolver.LookupCNAME(ctx, host)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", host, err)
	}
	canonical = strings.TrimSuffix(canonical, ".")

	r.mu.Lock()
	r.cache[key] = canonical
	r.mu.Unlock()
	return canonical, nil
}

// Local implements Resolver.
func (r *NetResolver) Local(ctx context.Context) (string, error) {
	r.mu.Lock()
	local := r.local
	r.mu.Unlock()
	if local != "" {
		return local, nil
	}

	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("reading local hostname: %w", err)
	}
	canonical, err := r.Canonical(ctx, name)
	if err != nil {
		// Not every host has a resolvable name; fall back to the
		// bare hostname.
		canonical = name
	}

	r.mu.Lock()
	r.local = canonical
	r.mu.Unlock()
	return canonical, nil
}

// Static is a Resolver with a fixed host table, used in tests and in
// deployments where ACL hosts are known up front.
type Static struct {
	// Hosts maps lower-case host names to canonical names.
	Hosts map[string]string

	// LocalName is the canonical local hostname.
	LocalName string
}

// Canonical implements Resolver.
func (s *Static) Canonical(_ context.Context, host string) (string, error) {
	if canonical, ok := s.Hosts[strings.ToLower(host)]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unknown host %q", host)
}

// Local implements Resolver.
func (s *Static) Local(context.Context) (string, error) {
	if s.LocalName == "" {
		return "", fmt.Errorf("no local hostname configured")
	}
	return s.LocalName, nil
}
