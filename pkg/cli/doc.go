/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the attrcheck
// tool.
//
// # Commands
//
// check - Verify a request's attribute values:
//
//	attrcheck check --input attrs.yaml [--format yaml|json|table]
//	attrcheck check -i attrs.yaml --resources site.yaml --fail-on-error
//
// Reads an attribute list from a YAML file, runs every attribute through
// the verification engine, and writes a report. Use --fail-on-error for
// CI pipelines (non-zero exit when any attribute fails).
//
// resources - List what the engine can verify:
//
//	attrcheck resources [--format yaml|json|table]
//
// Prints the registered attribute validators and the builtin resource
// definitions.
//
// # Input File
//
// The check input is a YAML document naming the request kind and the
// attribute list:
//
//	request: queue-job
//	object: job
//	attributes:
//	  - name: Job_Name
//	    value: nightly
//	  - name: Resource_List
//	    resource: ncpus
//	    value: "8"
//	  - name: select
//	    value: 2:ncpus=4+1:mem=1gb
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/openwlm/attrcheck/pkg/cli.version=1.0.0'"
package cli
