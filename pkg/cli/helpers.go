/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/openwlm/attrcheck/pkg/batch"
	"github.com/openwlm/attrcheck/pkg/serializer"
)

// checkInput is the YAML document accepted by the check command.
type checkInput struct {
	Request    string             `yaml:"request"`
	Object     string             `yaml:"object"`
	Attributes []*batch.Attribute `yaml:"attributes"`
}

var requestKinds = map[string]batch.RequestKind{
	"queue-job":          batch.RequestQueueJob,
	"modify-job":         batch.RequestModifyJob,
	"status-job":         batch.RequestStatusJob,
	"select-jobs":        batch.RequestSelectJobs,
	"submit-reservation": batch.RequestSubmitReservation,
	"modify-reservation": batch.RequestModifyReservation,
	"status-reservation": batch.RequestStatusReservation,
	"manager":            batch.RequestManager,
	"status-queue":       batch.RequestStatusQueue,
	"status-server":      batch.RequestStatusServer,
}

var objectKinds = map[string]batch.ObjectKind{
	"job":         batch.ObjectJob,
	"queue":       batch.ObjectQueue,
	"server":      batch.ObjectServer,
	"reservation": batch.ObjectReservation,
	"node":        batch.ObjectNode,
}

// parseOutputFormat extracts and validates the output format from CLI
// flags.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// loadInput reads and decodes a check input file.
func loadInput(path string) (batch.Context, []*batch.Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return batch.Context{}, nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var in checkInput
	if err := dec.Decode(&in); err != nil {
		return batch.Context{}, nil, fmt.Errorf("decoding input file %q: %w", path, err)
	}

	vc := batch.Context{Request: batch.RequestQueueJob, Object: batch.ObjectJob}
	if in.Request != "" {
		kind, ok := requestKinds[in.Request]
		if !ok {
			return batch.Context{}, nil, fmt.Errorf("unknown request kind %q", in.Request)
		}
		vc.Request = kind
	}
	if in.Object != "" {
		kind, ok := objectKinds[in.Object]
		if !ok {
			return batch.Context{}, nil, fmt.Errorf("unknown object kind %q", in.Object)
		}
		vc.Object = kind
	}
	return vc, in.Attributes, nil
}
