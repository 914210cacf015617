package main

import (
	"fmt"

	"github.com/readmeforge/internal/logger"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func (f *rootFlags) logger(cmd *cobra.Command) *logger.Logger {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return logger.Nop()
	}
	return log
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "readmegen",
		Short:         "Generate GitHub profile READMEs from a profile file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newTechnologiesCmd())
	cmd.AddCommand(newIconsCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
