// Package cmd provides the root command of trebuchet.
package cmd

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/maisem/trebuchet/calibration"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	policy  string
	format  string
	verbose bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "trebuchet [file]",
		Short: "Sum the calibration values of a calibration document",
		Long: `Trebuchet reads a calibration document, one value per line, and prints
two totals:

  Q1  first and last digit characters of each line
  Q2  the same, also counting spelled-out digits ("one" ... "nine")

The document is read from file, or from standard input when file is
omitted or "-".`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.policy, "policy", calibration.Strict.String(), "what to do with a line that has no digits: strict (fail) or zero (count as 0)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every line's digits to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	policy, err := calibration.ParsePolicy(opts.policy)
	if err != nil {
		return err
	}
	write, err := newSink(opts.format)
	if err != nil {
		return err
	}
	log := newLogger(opts.verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	a := &calibration.Aggregator{
		Policy: policy,
		OnLine: func(r calibration.LineResult) {
			log.Debug("line",
				zap.Int("n", r.Number),
				zap.String("text", r.Line),
				zap.Ints("literal", r.Literal),
				zap.Int("q1", r.LiteralValue),
				zap.Ints("mixed", r.Mixed),
				zap.Int("q2", r.MixedValue),
			)
		},
	}
	totals, err := a.Run(calibration.NewLineSource(in))
	if err != nil {
		return err
	}
	log.Info("calibrated",
		zap.Stringer("policy", policy),
		zap.Int("q1", totals.Literal),
		zap.Int("q2", totals.Mixed),
	)
	return write(cmd.OutOrStdout(), totals)
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "opening calibration document")
	}
	return f, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
