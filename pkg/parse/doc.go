/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package parse holds the shared text parsers consumed by the attribute
// verification core: at-lists (user@host collections), dependency lists,
// output/error path preparation, job array ranges, job and reservation
// names, stage-in/out lists, and the plus-delimited chunk grammar used by
// select specifications.
//
// Every parser is a pure function of its input text. Parsers that
// normalize their input (dependency lists, paths) return the rebuilt text
// rather than mutating anything; callers decide whether to adopt it.
package parse
