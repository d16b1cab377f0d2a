/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/openwlm/attrcheck/pkg/resource"
	"github.com/openwlm/attrcheck/pkg/serializer"
	"github.com/openwlm/attrcheck/pkg/verify"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify the attribute values of a batch request",
		Description: `Reads an attribute list from a YAML input file, verifies every value
against the registered validators and resource definitions, and writes a
report. Attributes whose names carry no validator pass unchanged;
whether an attribute is permitted at all is server policy.

# Examples

Verify a submission's attributes:
  attrcheck check --input attrs.yaml

Verify against site-defined custom resources:
  attrcheck check --input attrs.yaml --resources site-resources.yaml

Fail the pipeline when anything is rejected:
  attrcheck check --input attrs.yaml --fail-on-error --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "Input file path with the request kind and attribute list",
			},
			&cli.StringFlag{
				Name:    "resources",
				Aliases: []string{"r"},
				Usage:   "YAML file with site resource definitions merged over the builtin table",
			},
			&cli.Int64Flag{
				Name:  "max-licenses",
				Value: verify.DefaultMaxLicenses,
				Usage: "Ceiling for the license min/max attributes",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when any attribute fails verification",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			vc, attrs, err := loadInput(cmd.String("input"))
			if err != nil {
				return err
			}

			opts := []verify.Option{
				verify.WithVersion(version),
				verify.WithMaxLicenses(cmd.Int64("max-licenses")),
			}
			if path := cmd.String("resources"); path != "" {
				table, err := loadResourceTable(path)
				if err != nil {
					return err
				}
				opts = append(opts, verify.WithResourceTable(resource.Builtin().Merge(table)))
			}

			v := verify.New(opts...)
			report, err := v.VerifyAll(ctx, vc, attrs)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			slog.Info("attributes verified",
				"total", report.Summary.Total,
				"passed", report.Summary.Passed,
				"failed", report.Summary.Failed,
			)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			if err := ser.Serialize(report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && report.Summary.Failed > 0 {
				first := report.FirstFailure()
				return fmt.Errorf("%d of %d attributes failed, first: %s",
					report.Summary.Failed, report.Summary.Total, first.Message)
			}
			return nil
		},
	}
}

// loadResourceTable reads a site resource definition file.
func loadResourceTable(path string) (*resource.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening resource file: %w", err)
	}
	defer f.Close()

	table, err := resource.LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("loading resource file %q: %w", path, err)
	}
	return table, nil
}
