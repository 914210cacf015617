package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/readmeforge/internal/config"
	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/profile"
	"github.com/readmeforge/internal/readme"
	"github.com/readmeforge/internal/service"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	file         string
	output       string
	quote        bool
	skipValidate bool
}

// newQuoteGenerator 在测试中会被替换为桩实现。
var newQuoteGenerator = func(cfg config.AppConfig, log *logger.Logger) service.QuoteGenerator {
	return service.NewQuoteService(service.SettingsFromConfig(cfg), log)
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a README from a YAML profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, rootFlags.logger(cmd))
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the profile YAML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the README to this path instead of stdout")
	cmd.Flags().BoolVar(&opts.quote, "quote", false, "Ask the configured AI provider for a fresh quote")
	cmd.Flags().BoolVar(&opts.skipValidate, "skip-validate", false, "Render even if the profile fails validation")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, log *logger.Logger) error {
	p, err := profile.LoadFile(opts.file)
	if err != nil {
		return newCommandError("generate", "loading profile", err, "Check that the file exists and is valid YAML.")
	}

	if !opts.skipValidate {
		if err := profile.Validate(p); err != nil {
			var fields profile.FieldErrors
			if errors.As(err, &fields) {
				return newCommandError("generate", "validating profile", fields, "Fix the listed fields or pass --skip-validate.")
			}
			return newCommandError("generate", "validating profile", err, "Fix the profile and try again.")
		}
	}

	if opts.quote {
		p.Quote = refreshQuote(cmd.Context(), p, log)
	}

	markdown := readme.Generate(p)
	if opts.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), markdown)
		return err
	}

	if err := os.WriteFile(opts.output, []byte(markdown), 0o644); err != nil {
		return newCommandError("generate", "writing README", err, "Check that the output directory exists and is writable.")
	}
	fmt.Fprintln(cmd.ErrOrStderr(), successStyle(cmd.ErrOrStderr()).Render("README written to "+opts.output))
	return nil
}

// refreshQuote 请求新的签名，失败时保留原签名。
func refreshQuote(ctx context.Context, p profile.Profile, log *logger.Logger) string {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := config.LoadDotEnv(); err != nil {
		log.Warn(err.Error())
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(ctx, cfg.QuoteTimeout)
	defer cancel()

	quote, ok := service.SafeQuote(ctx, newQuoteGenerator(cfg, log), service.QuoteInputFromProfile(p))
	if !ok {
		log.Warn("could not generate a new quote, keeping the existing one")
		return p.Quote
	}
	return quote
}
