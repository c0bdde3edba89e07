package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"questcal/internal/exporter"
	"questcal/internal/ics"
	"questcal/internal/recur"
)

func newPreviewCmd(g *globals) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   "preview [schedule.txt]",
		Short: "list the meetings and sessions found in schedule text",
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

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tSECTION\tTYPE\tDAYS\tTIME\tROOM\tINSTRUCTOR\tDATES")
			for _, rec := range res.Records {
				when := rec.StartTime + "-" + rec.EndTime
				if rec.IsTBA {
					when = "TBA"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s - %s\n",
					rec.Course.Code, rec.Section, rec.Component, rec.DaysText, when,
					rec.Location, rec.Instructor, rec.StartDate, rec.EndDate)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			for _, ev := range res.Events {
				line := ics.Fill("@code @type @section", ev.Meta)
				sessions, err := recur.Sessions(ev, 0)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", line, err)
					continue
				}
				if len(sessions.Starts) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no sessions\n", line)
					continue
				}
				first := sessions.Starts[0]
				last := sessions.Starts[len(sessions.Starts)-1]
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sessions, %s to %s\n",
					line, len(sessions.Starts), first.Format("Mon 2006-01-02 15:04"), last.Format("Mon 2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.dateFormat, "date-format", "", "Date field order, e.g. MM/DD/YYYY or DD/MM/YYYY")
	cmd.Flags().IntVar(&f.maxCourses, "max-courses", 0, "Maximum course headers")
	cmd.Flags().IntVar(&f.maxSections, "max-sections", 0, "Maximum meetings per course")
	return cmd
}
