/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/openwlm/attrcheck/pkg/resource"
	"github.com/openwlm/attrcheck/pkg/serializer"
	"github.com/openwlm/attrcheck/pkg/verify"
)

// registryListing is what the resources command prints.
type registryListing struct {
	Attributes []string `json:"attributes" yaml:"attributes"`
	Resources  []string `json:"resources" yaml:"resources"`
}

func resourcesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resources",
		EnableShellCompletion: true,
		Usage:                 "List verifiable attributes and builtin resource definitions",
		Description: `Prints the attribute names with a registered validator and the builtin
resource definitions a job may request through Resource_List and select
specifications. Site resource files passed to "check --resources" extend
the builtin set.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			listing := registryListing{
				Attributes: verify.Registered(),
				Resources:  resource.Builtin().Names(),
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			return ser.Serialize(listing)
		},
	}
}
