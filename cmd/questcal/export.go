package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"questcal/internal/exporter"
	"questcal/internal/ics"
	appLog "questcal/internal/log"
	"questcal/internal/watch"
)

// exportFlags are per-run overrides of the configuration.
type exportFlags struct {
	dateFormat  string
	summary     string
	description string
	output      string
	maxCourses  int
	maxSections int
	uid         bool
	strict      bool
	noVerify    bool
}

func newExportCmd(g *globals) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "export [schedule.txt]",
		Short: "convert schedule text (file or stdin) into an .ics file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(g, f, cmd, args)
			if err != nil {
				return err
			}
			res, err := exporter.Run(req)
			if err != nil {
				return err
			}

			if !f.noVerify {
				rep, err := ics.Validate(res.Document)
				if err != nil {
					return err
				}
				appLog.Info("calendar verified", "events", rep.Events, "recurring", rep.Recurring, "sessions", rep.Sessions, "truncated", rep.Truncated)
			}

			out := f.output
			if out == "" {
				out = res.Filename
			}
			if out == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), res.Document)
				return err
			}
			if err := watch.WriteFile(out, []byte(res.Document)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d events to %s\n", len(res.Events), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.dateFormat, "date-format", "", "Date field order, e.g. MM/DD/YYYY or DD/MM/YYYY")
	cmd.Flags().StringVar(&f.summary, "summary", "", "Summary template (placeholders: @code @section @name @type @location @prof)")
	cmd.Flags().StringVar(&f.description, "description", "", "Description template")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output path; '-' for stdout (default limits.filename)")
	cmd.Flags().IntVar(&f.maxCourses, "max-courses", 0, "Maximum course headers")
	cmd.Flags().IntVar(&f.maxSections, "max-sections", 0, "Maximum meetings per course")
	cmd.Flags().BoolVar(&f.uid, "uid", false, "Add a stable UID to every event")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Full RFC 5545 text escaping and line folding")
	cmd.Flags().BoolVar(&f.noVerify, "no-verify", false, "Skip reading the document back before writing it")
	return cmd
}

// buildRequest merges flags over the loaded config and reads the input.
func buildRequest(g *globals, f exportFlags, cmd *cobra.Command, args []string) (exporter.Request, error) {
	cfg := *g.cfg
	if f.dateFormat != "" {
		cfg.DateFormat = f.dateFormat
	}
	if f.summary != "" {
		cfg.Summary = f.summary
	}
	if f.description != "" {
		cfg.Description = f.description
	}
	if f.maxCourses > 0 {
		cfg.Limits.MaxCourses = f.maxCourses
	}
	if f.maxSections > 0 {
		cfg.Limits.MaxSections = f.maxSections
	}
	cfg.EmitUID = cfg.EmitUID || f.uid
	cfg.StrictEscaping = cfg.StrictEscaping || f.strict

	text, err := readInput(cmd, args)
	if err != nil {
		return exporter.Request{}, err
	}
	return exporter.FromConfig(&cfg, text)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}
