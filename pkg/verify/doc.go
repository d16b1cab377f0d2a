/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package verify implements the attribute-value verification engine run
// against a batch request before a workload-management server accepts it.
//
// # Overview
//
// Every attribute family (job name, hold flags, mail points, checkpoint
// spec, resource list, select spec, preemption targets, ACL entries, and
// so on) has its own syntax and semantic rules. The engine routes each
// attribute to its validator through a fixed name-to-validator table and
// reports a uniform outcome: a code, and a human-readable message when
// the value is rejected.
//
// Resource-bearing attributes recurse: the select-specification and
// preempt-targets validators both extract name=value resource pairs from
// their expression grammars and feed each pair back through the generic
// resource validator, which consults the resource-definition table's
// optional datatype and value capabilities.
//
// # Usage
//
//	v := verify.New(verify.WithMaxLicenses(512))
//	out := v.Verify(ctx, batch.Context{Request: batch.RequestQueueJob}, &batch.Attribute{
//		Name:     batch.AttrResourceList,
//		Resource: "ncpus",
//		Value:    "4",
//	})
//	if !out.Passed() {
//		fmt.Println(out.Code, out.Message)
//	}
//
// Validators never mutate the attribute they verify. The few that
// normalize their input (dependency lists, output paths, mail points)
// return the replacement through the outcome; VerifyAll adopts it, or a
// direct caller can via Apply.
//
// # Concurrency
//
// A Verifier is safe for concurrent use once constructed: validators read
// only the immutable definition tables and the per-call context, and
// allocate only transient buffers. The sole I/O is hostname resolution in
// the ACL validator, which is rate limited.
package verify
