// Copyright 2025 go-qsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"strings"

	"github.com/ajroetker/go-qsort/contrib/workerpool"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// job is one input file sorted into one output file.
type job struct {
	input  string
	output string
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch IN:OUT [IN:OUT...]",
		Short: "Sort several files concurrently, one file per job",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := parseJobs(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			return a.runBatch(cmd.Context(), jobs, workers)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent jobs, 0 for GOMAXPROCS (env "+envWorkers+")")
	return cmd
}

// parseJobs parses IN:OUT pairs. It rejects pairs where two jobs write the
// same output, or where one job's output is another job's input.
func parseJobs(args []string) ([]job, error) {
	jobs := make([]job, 0, len(args))
	for _, arg := range args {
		in, out, ok := strings.Cut(arg, ":")
		if !ok || in == "" || out == "" {
			return nil, errors.Errorf("invalid job %q, want IN:OUT", arg)
		}
		jobs = append(jobs, job{input: in, output: out})
	}

	if dups := lo.FindDuplicatesBy(jobs, func(j job) string { return j.output }); len(dups) > 0 {
		return nil, errors.Errorf("output %s is written by more than one job", dups[0].output)
	}

	byOutput := lo.KeyBy(jobs, func(j job) string { return j.output })
	for _, j := range jobs {
		if writer, ok := byOutput[j.input]; ok && writer != j {
			return nil, errors.Errorf("input %s is the output of job %s:%s", j.input, writer.input, writer.output)
		}
	}
	return jobs, nil
}

func (a *app) runBatch(ctx context.Context, jobs []job, workers int) error {
	pool := workerpool.New(workers)
	defer pool.Close()

	a.log.WithField("jobs", len(jobs)).WithField("workers", min(pool.NumWorkers(), len(jobs))).Debug("starting batch")

	errs := pool.Run(ctx, len(jobs), func(_ context.Context, i int) error {
		return a.sortFile(jobs[i].input, jobs[i].output)
	})

	for i, err := range errs {
		if err != nil {
			a.log.WithError(err).WithField("input", jobs[i].input).Error("job failed")
		}
	}

	if failed := lo.CountBy(errs, func(err error) bool { return err != nil }); failed > 0 {
		return errors.Errorf("%d of %d jobs failed", failed, len(jobs))
	}
	return nil
}
