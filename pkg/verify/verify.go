/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"fmt"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/hostname"
	"github.com/openwlm/attrcheck/pkg/resource"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// DefaultMaxLicenses is the license ceiling applied when none is
// configured.
const DefaultMaxLicenses = 10_000_000

// defaultLookupsPerSecond bounds ACL hostname resolution by default.
const defaultLookupsPerSecond = 20

// Verifier verifies batch request attribute values. Construct with New;
// the zero value is not usable.
type Verifier struct {
	// Version is the engine version reported on batch reports.
	version string

	resources   *resource.Table
	resvAttrs   *resource.Table
	maxLicenses int64
	resolver    hostname.Resolver
}

// Option is a functional option for configuring Verifier instances.
type Option func(*Verifier)

// WithVersion sets the version string stamped on reports.
func WithVersion(version string) Option {
	return func(v *Verifier) { v.version = version }
}

// WithResourceTable sets the server resource-definition table consulted
// by resource-bearing validators. The table is treated as read-only.
func WithResourceTable(t *resource.Table) Option {
	return func(v *Verifier) { v.resources = t }
}

// WithReservationTable sets the reservation attribute table consulted by
// the preempt-targets validator for queue references.
func WithReservationTable(t *resource.Table) Option {
	return func(v *Verifier) { v.resvAttrs = t }
}

// WithMaxLicenses sets the license ceiling for the license min/max
// validators.
func WithMaxLicenses(n int64) Option {
	return func(v *Verifier) { v.maxLicenses = n }
}

// WithResolver sets the hostname resolver used by the ACL validator.
func WithResolver(r hostname.Resolver) Option {
	return func(v *Verifier) { v.resolver = r }
}

// New creates a Verifier with the builtin tables and defaults, then
// applies the options. The select and preempt-targets validators are also
// wired into the resource table so that Resource_List.select and
// Resource_List.preempt_targets recurse through the same engine.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		resources:   resource.Builtin(),
		resvAttrs:   resource.Reservation(),
		maxLicenses: DefaultMaxLicenses,
		resolver:    hostname.NewNetResolver(defaultLookupsPerSecond),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.resources = v.resources.Merge(resource.NewTable(
		&resource.Definition{
			Name: batch.AttrSelect,
			VerifyValue: func(vc batch.Context, attr *batch.Attribute) verror.Outcome {
				return v.verifySelect(context.Background(), vc, attr)
			},
		},
		&resource.Definition{
			Name: batch.AttrPreemptTargets,
			VerifyValue: func(vc batch.Context, attr *batch.Attribute) verror.Outcome {
				return v.verifyPreemptTargets(context.Background(), vc, attr)
			},
		},
	))
	return v
}

// Verify runs the validator registered for the attribute's name and
// returns its outcome. Attributes outside the registry pass: whether an
// attribute is permitted at all is server policy, not value verification.
// A failing outcome with no message from the validator gets the code's
// canonical text plus the attribute identifier.
func (v *Verifier) Verify(ctx context.Context, vc batch.Context, attr *batch.Attribute) verror.Outcome {
	if attr == nil {
		return verror.Fail(verror.Internal)
	}

	fn, ok := registry[attr.Name]
	if !ok {
		verifyTotal.WithLabelValues("unregistered").Inc()
		return verror.Pass()
	}

	out := fn(v, ctx, vc, attr)
	if !out.Passed() && out.Message == "" {
		out.Message = synthesizeMessage(out.Code, attr)
	}
	verifyTotal.WithLabelValues(out.Code.String()).Inc()
	return out
}

// Apply adopts a rewrite outcome: on a successful replacement the
// attribute's value becomes the rewritten text. The caller owns the swap
// so a failed validator can never tear down a value it was only lent.
func Apply(attr *batch.Attribute, out verror.Outcome) {
	if out.Passed() && out.Replaced {
		attr.Value = out.Rewritten
	}
}

// synthesizeMessage builds the fallback rejection message from the
// code's canonical text and the attribute identifier.
func synthesizeMessage(code verror.Code, attr *batch.Attribute) string {
	if attr.Resource != "" {
		return fmt.Sprintf("%s %s.%s", code.Text(), attr.Name, attr.Resource)
	}
	return fmt.Sprintf("%s %s", code.Text(), attr.Name)
}
