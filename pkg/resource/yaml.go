/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package resource

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// tableDoc is the YAML shape of a custom resource table:
//
//	resources:
//	  - name: scratch
//	    type: size
//	  - name: ngpus_spare
//	    type: long
//	    min: 0
type tableDoc struct {
	Resources []resourceDoc `yaml:"resources"`
}

type resourceDoc struct {
	Name string   `yaml:"name"`
	Type string   `yaml:"type"`
	Min  *int64   `yaml:"min,omitempty"`
	Enum []string `yaml:"enum,omitempty"`
}

// datatypeByName maps YAML type names to datatype checks.
var datatypeByName = map[string]DatatypeFunc{
	"long":         DatatypeLong,
	"float":        DatatypeFloat,
	"bool":         DatatypeBool,
	"string":       DatatypeString,
	"string_array": DatatypeStringArray,
	"size":         DatatypeSize,
	"duration":     DatatypeDuration,
}

// LoadTable reads a custom resource table from YAML. Site-defined
// resources extend the builtin table via Merge.
func LoadTable(r io.Reader) (*Table, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding resource table: %w", err)
	}

	defs := make([]*Definition, 0, len(doc.Resources))
	for _, rd := range doc.Resources {
		if rd.Name == "" {
			return nil, fmt.Errorf("resource with empty name")
		}
		datatype, ok := datatypeByName[rd.Type]
		if !ok {
			return nil, fmt.Errorf("resource %q has unknown type %q", rd.Name, rd.Type)
		}

		def := &Definition{Name: rd.Name, VerifyDatatype: datatype}
		switch {
		case rd.Min != nil:
			if rd.Type != "long" {
				return nil, fmt.Errorf("resource %q: min applies only to long resources", rd.Name)
			}
			min := *rd.Min
			def.VerifyValue = func(_ batch.Context, attr *batch.Attribute) verror.Outcome {
				return atLeast(attr, min)
			}
		case len(rd.Enum) > 0:
			def.VerifyValue = Enum(rd.Enum...)
		}
		defs = append(defs, def)
	}
	return NewTable(defs...), nil
}
