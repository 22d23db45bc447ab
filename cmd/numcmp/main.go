package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/rogov-ks/numcmp/compare"
	"gitlab.com/rogov-ks/numcmp/config"
	"gitlab.com/rogov-ks/numcmp/loader"
)

func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}

// loadError carries the exit status chosen for a file that could not be read.
type loadError struct {
	err  error
	code int
}

func (e *loadError) Error() string { return e.err.Error() }

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func usageArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numcmp <file1> <file2>",
		Short: "Compare if two files contain the same numbers.",
		Long: `Compare if two files contain the same numbers.

Every run of decimal digits in a file is one number; leading zeros are
ignored. The files match when they contain the same numbers with the same
frequencies, in any order.

Arguments:
  file1   Path to the first file
  file2   Path to the second file

Settings are read from the YAML file named by $` + config.EnvPath + `, if set.`,
		Args:          usageArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], stdout, stderr)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runCompare(path1, path2 string, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	enc, err := loader.Encoding(cfg.Encoding)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, lvl)
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting comparison",
		zap.String("file1", path1),
		zap.String("file2", path2),
		zap.String("encoding", cfg.Encoding),
	)

	c := compare.New(func(path string) (string, error) {
		return loader.Load(path, enc)
	}, logger)

	result, err := c.Compare(path1, path2)
	if err != nil {
		var le *loader.Error
		if errors.As(err, &le) {
			// Ошибка чтения файла: сообщение и выход без отчёта
			return &loadError{err: err, code: cfg.ReadErrorExitCode}
		}
		return err
	}

	logger.Info("comparison done",
		zap.Bool("equal", result.Equal),
		zap.Int("numbers_file1", result.First.Count),
		zap.Int("numbers_file2", result.Second.Count),
	)
	return compare.Render(stdout, result)
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var le *loadError
	if errors.As(err, &le) {
		fmt.Fprintln(stderr, le.Error())
		return le.code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
