/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package resource

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/verror"
)

// sizeSuffixes are the accepted byte/word multipliers of a size value,
// matched case-insensitively.
var sizeSuffixes = []string{"kb", "mb", "gb", "tb", "pb", "b", "kw", "mw", "gw", "tw", "pw", "w"}

// DatatypeLong accepts a decimal integer, optionally signed.
func DatatypeLong(attr *batch.Attribute) verror.Code {
	if _, err := strconv.ParseInt(attr.Value, 10, 64); err != nil {
		return verror.BadValue
	}
	return verror.OK
}

// DatatypeFloat accepts a decimal floating point number.
func DatatypeFloat(attr *batch.Attribute) verror.Code {
	if _, err := strconv.ParseFloat(attr.Value, 64); err != nil {
		return verror.BadValue
	}
	return verror.OK
}

// DatatypeBool accepts the usual boolean spellings: true/false, t/f,
// yes/no, y/n, 1/0, case-insensitive.
func DatatypeBool(attr *batch.Attribute) verror.Code {
	switch cases.Fold().String(attr.Value) {
	case "true", "t", "yes", "y", "1", "false", "f", "no", "n", "0":
		return verror.OK
	}
	return verror.BadValue
}

// DatatypeString accepts any single-line text.
func DatatypeString(attr *batch.Attribute) verror.Code {
	if attr.Value == "" || strings.ContainsAny(attr.Value, "\n\r") {
		return verror.BadValue
	}
	return verror.OK
}

// DatatypeStringArray accepts a comma-separated list of non-empty
// single-line strings.
func DatatypeStringArray(attr *batch.Attribute) verror.Code {
	if attr.Value == "" {
		return verror.BadValue
	}
	for item := range strings.SplitSeq(attr.Value, ",") {
		if item == "" || strings.ContainsAny(item, "\n\r") {
			return verror.BadValue
		}
	}
	return verror.OK
}

// DatatypeSize accepts an unsigned integer with an optional multiplier
// suffix: 100, 10kb, 2GB, 1mw.
func DatatypeSize(attr *batch.Attribute) verror.Code {
	v := cases.Fold().String(attr.Value)
	for _, suffix := range sizeSuffixes {
		if strings.HasSuffix(v, suffix) {
			v = strings.TrimSuffix(v, suffix)
			break
		}
	}
	if v == "" {
		return verror.BadValue
	}
	if _, err := strconv.ParseUint(v, 10, 64); err != nil {
		return verror.BadValue
	}
	return verror.OK
}

// DatatypeDuration accepts either plain seconds or [[hh:]mm:]ss clock
// form, with minutes and seconds below sixty when more than one field is
// given.
func DatatypeDuration(attr *batch.Attribute) verror.Code {
	fields := strings.Split(attr.Value, ":")
	if len(fields) > 3 {
		return verror.BadValue
	}
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return verror.BadValue
		}
		// Only the leading field may run past 59.
		if len(fields) > 1 && i > 0 && n > 59 {
			return verror.BadValue
		}
	}
	return verror.OK
}
