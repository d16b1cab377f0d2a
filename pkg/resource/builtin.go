/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package resource

import (
	"fmt"
	"strconv"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// NonNegative is a value check requiring an integer of at least zero.
func NonNegative(_ batch.Context, attr *batch.Attribute) verror.Outcome {
	return atLeast(attr, 0)
}

// Positive is a value check requiring an integer of at least one.
func Positive(_ batch.Context, attr *batch.Attribute) verror.Outcome {
	return atLeast(attr, 1)
}

func atLeast(attr *batch.Attribute, min int64) verror.Outcome {
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return verror.Outcome{Code: verror.BadValue}
	}
	if n < min {
		return verror.Outcome{Code: verror.OutOfRange}
	}
	return verror.Pass()
}

// Enum returns a value check accepting exactly the given values.
func Enum(values ...string) ValueFunc {
	return func(_ batch.Context, attr *batch.Attribute) verror.Outcome {
		for _, v := range values {
			if attr.Value == v {
				return verror.Pass()
			}
		}
		return verror.Failf(verror.BadValue,
			fmt.Sprintf("value %q not one of %v", attr.Value, values))
	}
}

// Builtin returns the server resource definition table: the resources a
// job may request through Resource_List and select specifications.
func Builtin() *Table {
	return NewTable(
		&Definition{Name: "ncpus", VerifyDatatype: DatatypeLong, VerifyValue: NonNegative},
		&Definition{Name: "mpiprocs", VerifyDatatype: DatatypeLong, VerifyValue: NonNegative},
		&Definition{Name: "ompthreads", VerifyDatatype: DatatypeLong, VerifyValue: NonNegative},
		&Definition{Name: "ngpus", VerifyDatatype: DatatypeLong, VerifyValue: NonNegative},
		&Definition{Name: "nodect", VerifyDatatype: DatatypeLong, VerifyValue: Positive},
		&Definition{Name: "mem", VerifyDatatype: DatatypeSize},
		&Definition{Name: "vmem", VerifyDatatype: DatatypeSize},
		&Definition{Name: "pmem", VerifyDatatype: DatatypeSize},
		&Definition{Name: "file", VerifyDatatype: DatatypeSize},
		&Definition{Name: "walltime", VerifyDatatype: DatatypeDuration},
		&Definition{Name: "cput", VerifyDatatype: DatatypeDuration},
		&Definition{Name: "pcput", VerifyDatatype: DatatypeDuration},
		&Definition{Name: "min_walltime", VerifyDatatype: DatatypeDuration},
		&Definition{Name: "max_walltime", VerifyDatatype: DatatypeDuration},
		&Definition{Name: "place", VerifyDatatype: DatatypeString,
			VerifyValue: Enum("free", "pack", "scatter", "vscatter", "excl", "exclhost", "shared")},
		&Definition{Name: "arch", VerifyDatatype: DatatypeString},
		&Definition{Name: "host", VerifyDatatype: DatatypeString},
		&Definition{Name: "software", VerifyDatatype: DatatypeString},
		&Definition{Name: "exclusive", VerifyDatatype: DatatypeBool},
	)
}

// Reservation returns the reservation attribute definition table used by
// the preempt-targets validator to type queue references.
func Reservation() *Table {
	return NewTable(
		&Definition{Name: batch.AttrQueue, VerifyDatatype: queueName},
	)
}

// queueName checks queue-name syntax: a leading letter followed by
// letters, digits, dashes, or underscores.
func queueName(attr *batch.Attribute) verror.Code {
	v := attr.Value
	if v == "" {
		return verror.BadValue
	}
	first := v[0]
	if !(first >= 'a' && first <= 'z') && !(first >= 'A' && first <= 'Z') {
		return verror.BadValue
	}
	for i := 1; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return verror.BadValue
		}
	}
	return verror.OK
}
