/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxPathLen is the capacity of a prepared output/error path.
const MaxPathLen = 4096

// PreparePath normalizes an output or error path of the form [host:]path.
// A relative path is resolved against the current working directory, and
// the path component is cleaned. The prepared text replaces the submitted
// value on success.
func PreparePath(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty path")
	}

	host := ""
	path := value
	// A colon splits host from path only when the prefix is a plain
	// hostname; "/a:b" stays a path.
	if i := strings.IndexByte(value, ':'); i > 0 && !strings.ContainsRune(value[:i], '/') {
		if !validHostname(value[:i]) {
			return "", fmt.Errorf("bad host %q in path %q", value[:i], value)
		}
		host, path = value[:i], value[i+1:]
	}
	if path == "" {
		return "", fmt.Errorf("empty path component in %q", value)
	}

	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving relative path %q: %w", path, err)
		}
		path = filepath.Join(wd, path)
	} else {
		path = filepath.Clean(path)
	}

	prepared := path
	if host != "" {
		prepared = host + ":" + path
	}
	if len(prepared) > MaxPathLen {
		return "", fmt.Errorf("prepared path exceeds %d characters", MaxPathLen)
	}
	return prepared, nil
}
