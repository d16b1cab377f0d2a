/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package resource holds resource definitions and their lookup table.
//
// A definition exposes up to two optional capabilities: a datatype check
// on the raw text and a value check that sees the request context. Either
// may be absent; the verification core composes them datatype-first and
// short-circuits on the first failure. The tables are read-only after
// construction and safe for concurrent lookups.
package resource

import (
	"sort"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// DatatypeFunc verifies the syntactic form of a resource value.
type DatatypeFunc func(attr *batch.Attribute) verror.Code

// ValueFunc verifies a well-formed resource value against the request
// context.
type ValueFunc func(vc batch.Context, attr *batch.Attribute) verror.Outcome

// Definition describes one resource. A nil VerifyDatatype or VerifyValue
// means that capability is absent.
type Definition struct {
	Name           string
	VerifyDatatype DatatypeFunc
	VerifyValue    ValueFunc
}

// Table is a read-only set of resource definitions keyed by name.
type Table struct {
	defs map[string]*Definition
}

// NewTable builds a table from the given definitions. Later duplicates
// replace earlier ones.
func NewTable(defs ...*Definition) *Table {
	t := &Table{defs: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		t.defs[def.Name] = def
	}
	return t
}

// Lookup returns the definition for name, if present.
func (t *Table) Lookup(name string) (*Definition, bool) {
	if t == nil {
		return nil, false
	}
	def, ok := t.defs[name]
	return def, ok
}

// Names returns the defined resource names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new table containing t's definitions overlaid with
// extra's. Neither input is modified.
func (t *Table) Merge(extra *Table) *Table {
	merged := &Table{defs: make(map[string]*Definition, len(t.defs)+len(extra.defs))}
	for name, def := range t.defs {
		merged.defs[name] = def
	}
	for name, def := range extra.defs {
		merged.defs[name] = def
	}
	return merged
}
