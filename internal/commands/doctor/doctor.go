// Package doctor runs health checks against the generator setup.
package doctor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Status is the outcome of a single check item.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Item is one line of a check result.
type Item struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result groups the items reported by one check.
type Result struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

func (r *Result) add(status Status, label, detail string) {
	r.Items = append(r.Items, Item{Label: label, Status: status, Detail: detail})
}

// Pass records a passing item.
func (r *Result) Pass(label, detail string) { r.add(StatusPass, label, detail) }

// Warn records a non-fatal issue.
func (r *Result) Warn(label, detail string) { r.add(StatusWarn, label, detail) }

// Fail records a failing item.
func (r *Result) Fail(label, detail string) { r.add(StatusFail, label, detail) }

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll runs checks concurrently. Results keep the order of checks.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))

	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Report summarizes a doctor run.
type Report struct {
	Healthy bool     `json:"healthy"`
	Passed  int      `json:"passed"`
	Warned  int      `json:"warned"`
	Failed  int      `json:"failed"`
	Checks  []Result `json:"checks"`
}

// NewReport tallies results.
func NewReport(results []Result) Report {
	r := Report{Checks: results}
	for _, res := range results {
		for _, item := range res.Items {
			switch item.Status {
			case StatusPass:
				r.Passed++
			case StatusWarn:
				r.Warned++
			case StatusFail:
				r.Failed++
			}
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
