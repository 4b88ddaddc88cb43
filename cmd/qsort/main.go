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

// Command qsort sorts a file of numbers with one of the qsort algorithms.
//
// Usage:
//
//	qsort --input in.txt --output out.txt
//	qsort --algorithm threeway < paths.txt          # paths read from stdin
//	qsort batch --workers 4 a.txt:a.out b.txt:b.out
//
// Input numbers may be separated by any whitespace. The output holds one
// number per line. When --input or --output is missing, the path is read
// from stdin, input first, with a prompt if stdin is a terminal.
//
// Settings can also come from the environment or a .env file:
//
//	QSORT_ALGORITHM=threeway   # lomuto (default) or threeway
//	QSORT_LOG_LEVEL=debug
//	QSORT_WORKERS=4            # batch concurrency, default GOMAXPROCS
package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/ajroetker/go-qsort/internal/tty"
	"github.com/ajroetker/go-qsort/qsort"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the I/O streams, logger and resolved configuration of one
// invocation.
type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv lookupFunc

	log *logrus.Logger
	cfg config

	// Flag values, applied over cfg in resolveConfig.
	algorithm qsort.Algorithm
	logLevel  string
	envFile   string
	input     string
	output    string
	stats     bool
}

var _ pflag.Value = (*qsort.Algorithm)(nil)

func newApp(stdin io.Reader, stdout, stderr io.Writer, lookupEnv lookupFunc) *app {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		lookupEnv: lookupEnv,
		log:       log,
		cfg:       defaultConfig(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsort",
		Short: "Sort a file of numbers in place with quicksort",
		Long: "qsort reads whitespace-separated numbers, sorts them with the Lomuto or\n" +
			"three-way quicksort, and writes them back one per line.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolveConfig,
		RunE:              a.runSort,
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.VarP(&a.algorithm, "algorithm", "a", "partitioning scheme: lomuto or threeway (env "+envAlgorithm+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+envLogLevel+")")
	pf.StringVar(&a.envFile, "env-file", ".env", "optional file of KEY=VALUE settings")

	f := cmd.Flags()
	f.StringVarP(&a.input, "input", "i", "", "input file (read from stdin when empty)")
	f.StringVarP(&a.output, "output", "o", "", "output file (read from stdin when empty)")
	f.BoolVar(&a.stats, "stats", false, "log comparison and partition counts")

	cmd.AddCommand(newBatchCmd(a), newVersionCmd())
	return cmd
}

// resolveConfig applies defaults, then the environment and env file, then
// any flags set on the command line.
func (a *app) resolveConfig(cmd *cobra.Command, _ []string) error {
	lookup, err := withEnvFile(a.lookupEnv, a.envFile)
	if err != nil {
		return err
	}
	cfg, err := configFromEnv(lookup)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = a.algorithm
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = logrus.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.log.SetLevel(cfg.LogLevel)
	a.log.WithFields(logrus.Fields{
		"algorithm": cfg.Algorithm,
		"workers":   cfg.Workers,
	}).Debug("configuration resolved")
	return nil
}

func (a *app) runSort(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(a.stdin)
	input, output, err := promptPaths(in, a.stderr, tty.IsTerminal(a.stdin), a.input, a.output)
	if err != nil {
		return err
	}
	return a.sortFile(input, output)
}

// execute runs the command line args and logs any failure.
func execute(ctx context.Context, a *app, args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("qsort failed")
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	if err := execute(ctx, a, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
