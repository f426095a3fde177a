// Command evens prints the even values of a fixed integer sequence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charmingruby/evens/internal/evens"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	err = newRootCmd(logger).Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds a production logger on stderr that stays silent unless
// something fails, so stdout carries only the report.
func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "evens",
		Short: "Print the even numbers of 1..5",
		// Arguments, flag-shaped or not, carry no meaning and are ignored.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := evens.Write(cmd.OutOrStdout(), evens.Numbers(), evens.DefaultOptions()); err != nil {
				logger.Error("report failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
