// Command pfold sums the sequence [0, length) in parallel and prints the
// result.
//
// Usage:
//
//	pfold [--length n] [--initial v] [--workers h] [-v]
//
// Every flag can also be set through an environment variable prefixed with
// PFOLD_, for example PFOLD_WORKERS=4.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/exascience/pfold"
	"github.com/exascience/pfold/config"
	"github.com/exascience/pfold/parallel"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(args []string, stdout io.Writer) (err error) {
	flags := pflag.NewFlagSet("pfold", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	if err = flags.Parse(args); err != nil {
		return
	}
	cfg, err := config.Load(viper.New(), flags)
	if err != nil {
		return
	}
	zapLogger, err := newLogger(cfg.Verbose)
	if err != nil {
		return
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := zapr.NewLogger(zapLogger).WithName("pfold")

	numbers := make(pfold.Slice[int64], cfg.Length)
	for i := range numbers {
		numbers[i] = int64(i)
	}
	sum := parallel.Sum[int64](numbers, cfg.Initial,
		parallel.Workers(cfg.Workers),
		parallel.WithLogger(logger))
	logger.V(1).Info("sum computed", "length", cfg.Length, "initial", cfg.Initial, "sum", sum)
	_, err = fmt.Fprintln(stdout, sum)
	return
}

// exitCode maps an error of run to the exit status of the command: 0 when
// help was requested, 2 for an invalid configuration, and 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return 0
	case pfold.Any(err, pfold.ErrInvalid, pfold.ErrUndefined):
		return 2
	default:
		return 1
	}
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
