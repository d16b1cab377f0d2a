/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package parse

import (
	"fmt"
	"strings"
)

// StageList checks a stage-in/stage-out file list. Each comma-separated
// entry names a local file and a remote location:
//
//	local_path@host:remote_path
func StageList(list string) error {
	if list == "" {
		return fmt.Errorf("empty stage list")
	}

	for entry := range strings.SplitSeq(list, ",") {
		entry = strings.TrimSpace(entry)

		at := strings.LastIndexByte(entry, '@')
		if at <= 0 {
			return fmt.Errorf("stage entry %q lacks local@remote form", entry)
		}
		local, remote := entry[:at], entry[at+1:]

		colon := strings.IndexByte(remote, ':')
		if colon <= 0 || colon == len(remote)-1 {
			return fmt.Errorf("stage entry %q lacks host:path remote", entry)
		}
		host := remote[:colon]

		if strings.ContainsAny(local, " \t") {
			return fmt.Errorf("bad local path in stage entry %q", entry)
		}
		if !validHostname(host) {
			return fmt.Errorf("bad host %q in stage entry %q", host, entry)
		}
	}
	return nil
}
