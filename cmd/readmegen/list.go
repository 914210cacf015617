package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/readmeforge/internal/catalog"
	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/profile"
	"github.com/readmeforge/internal/theme"
	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List stats themes and their contribution graph themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle(out).Render(fmt.Sprintf("%d stats themes", len(theme.StatsThemes()))))

			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "THEME\tLABEL\tCONTRIBUTION")
			for _, option := range theme.Options() {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", option.Value, option.Label, theme.ContributionTheme(option.Value))
			}
			return writer.Flush()
		},
	}
}

type technologiesOptions struct {
	service string
}

func newTechnologiesCmd() *cobra.Command {
	opts := &technologiesOptions{}

	cmd := &cobra.Command{
		Use:   "technologies",
		Short: "List technologies an icon service can render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := parseServiceFlag(opts.service)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle(out).Render(fmt.Sprintf("%s: %d technologies", icons.Config(service).Name, catalog.Count(service))))

			grouped := catalog.ByCategory(service)
			counts := catalog.CategoryCounts(service)
			for _, category := range catalog.Categories() {
				if counts[category.ID] == 0 {
					continue
				}
				names := make([]string, 0, counts[category.ID])
				for _, tech := range grouped[category.ID] {
					names = append(names, tech.Name)
				}
				fmt.Fprintf(out, "%s %s\n", mutedStyle(out).Render(fmt.Sprintf("%s (%d):", category.Name, counts[category.ID])), strings.Join(names, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.service, "service", string(icons.DefaultService), "Icon service (skillicons, devicon, techicons, shields)")
	return cmd
}

type iconsOptions struct {
	service string
	style   string
}

func newIconsCmd() *cobra.Command {
	opts := &iconsOptions{}

	cmd := &cobra.Command{
		Use:   "icons names...",
		Short: "Print icon URLs for technologies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := parseServiceFlag(opts.service)
			if err != nil {
				return err
			}
			if opts.style != "" && !icons.SupportsStyle(service, opts.style) {
				cfg := icons.Config(service)
				return newCommandError("list icons", "checking style", fmt.Errorf("style %q is not supported by %s", opts.style, cfg.Name), "Use one of: "+strings.Join(cfg.Themes, ", "))
			}

			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, profile.SplitTechStack(arg)...)
			}

			out := cmd.OutOrStdout()
			dims := icons.BadgeDimensions(service, opts.style)
			fmt.Fprintln(out, mutedStyle(out).Render(fmt.Sprintf("%dx%d, spacing %d", dims.Width, dims.Height, dims.Spacing)))

			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for i, url := range icons.MultipleURLs(service, names, opts.style) {
				fmt.Fprintf(writer, "%s\t%s\n", names[i], url)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.service, "service", string(icons.DefaultService), "Icon service (skillicons, devicon, techicons, shields)")
	cmd.Flags().StringVar(&opts.style, "style", "", "Icon theme or badge style")
	return cmd
}

func parseServiceFlag(raw string) (icons.Service, error) {
	service, ok := icons.ParseService(raw)
	if !ok {
		ids := make([]string, 0, 4)
		for _, cfg := range icons.Services() {
			ids = append(ids, string(cfg.ID))
		}
		return "", newCommandError("parse flags", "reading --service", fmt.Errorf("unknown icon service %q", raw), "Use one of: "+strings.Join(ids, ", "))
	}
	return service, nil
}
