/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// KeyValue is one resource request inside a select chunk.
type KeyValue struct {
	Key   string
	Value string
}

// Chunks splits a plus-delimited select specification into its chunks,
// lazily and in order. A chunk wrapped in parentheses (a grouped
// placement set) is unwrapped before being yielded.
func Chunks(spec string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for chunk := range strings.SplitSeq(spec, "+") {
			if strings.HasPrefix(chunk, "(") && strings.HasSuffix(chunk, ")") {
				chunk = chunk[1 : len(chunk)-1]
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// ParseChunk parses one select chunk of the form
//
//	[count][:]name=value[:name=value...]
//
// The leading count is optional and defaults to 1.
func ParseChunk(chunk string) (count int, pairs []KeyValue, err error) {
	if chunk == "" {
		return 0, nil, fmt.Errorf("empty chunk")
	}

	count = 1
	fields := strings.Split(chunk, ":")

	if !strings.ContainsRune(fields[0], '=') {
		n, convErr := strconv.Atoi(fields[0])
		if convErr != nil || n < 1 {
			return 0, nil, fmt.Errorf("bad chunk count %q", fields[0])
		}
		count = n
		fields = fields[1:]
	}

	for _, field := range fields {
		eq := strings.IndexByte(field, '=')
		if eq <= 0 || eq == len(field)-1 {
			return 0, nil, fmt.Errorf("bad resource assignment %q in chunk %q", field, chunk)
		}
		pairs = append(pairs, KeyValue{Key: field[:eq], Value: field[eq+1:]})
	}
	return count, pairs, nil
}
