/*
Copyright © 2026 The OpenWLM Authors
SPDX-License-Identifier: Apache-2.0
*/

package verify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openwlm/attrcheck/pkg/batch"
)

// Status is the overall outcome of verifying a request's attribute list.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result is the outcome of verifying one attribute.
type Result struct {
	Name     string `json:"name" yaml:"name"`
	Resource string `json:"resource,omitempty" yaml:"resource,omitempty"`
	Value    string `json:"value" yaml:"value"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Passed   bool   `json:"passed" yaml:"passed"`
}

// Summary aggregates a report.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Status   Status        `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the result of verifying a whole request's attribute list.
type Report struct {
	ID      string   `json:"id" yaml:"id"`
	Version string   `json:"version,omitempty" yaml:"version,omitempty"`
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// FirstFailure returns the first failing result in attribute order, or
// nil when everything passed. This is what a batch server reports to the
// submitting client as the rejection reason.
func (r *Report) FirstFailure() *Result {
	for i := range r.Results {
		if !r.Results[i].Passed {
			return &r.Results[i]
		}
	}
	return nil
}

// VerifyAll verifies every attribute of a request. Attributes are
// independent, so they are verified concurrently; results keep the
// submitted order for deterministic failure attribution. Successful
// rewrites (dependency lists, paths, mail points) are applied to the
// attributes in place before the report is returned.
func (v *Verifier) VerifyAll(ctx context.Context, vc batch.Context, attrs []*batch.Attribute) (*Report, error) {
	start := time.Now()
	defer func() {
		verifyBatchDuration.Observe(time.Since(start).Seconds())
	}()

	report := &Report{
		ID:      uuid.New().String(),
		Version: v.version,
		Results: make([]Result, len(attrs)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, attr := range attrs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out := v.Verify(ctx, vc, attr)
			Apply(attr, out)

			result := Result{
				Code:   out.Code.String(),
				Passed: out.Passed(),
			}
			if attr != nil {
				result.Name = attr.Name
				result.Resource = attr.Resource
				result.Value = attr.Value
			}
			if !out.Passed() {
				result.Message = out.Message
			}
			report.Results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, result := range report.Results {
		if result.Passed {
			report.Summary.Passed++
		} else {
			report.Summary.Failed++
		}
	}
	report.Summary.Total = len(report.Results)
	report.Summary.Duration = time.Since(start)
	report.Summary.Status = StatusPass
	if report.Summary.Failed > 0 {
		report.Summary.Status = StatusFail
	}

	slog.Debug("attribute verification completed",
		"id", report.ID,
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}
