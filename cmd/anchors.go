package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harkabeeparolus/pylendar/pkg/calendar"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(anchorsCmd)
}

var anchorsCmd = &cobra.Command{
	Use:   "anchors [year]",
	Short: "print the computed anchor dates for a year",
	Long: `anchors [year]
  print the computed anchor dates (easter, solstices, moon phases, ...)
  for the given year, defaulting to the current one`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			var err error
			year, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year '%s': %w", args[0], err)
			}
		}

		anchors := calendar.BuildAnchors(nil, year)
		names := make([]string, 0, len(anchors))
		for name := range anchors {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			resolved := anchors[name].Resolve(year)
			dates := make([]string, 0, len(resolved))
			for d := range resolved {
				dates = append(dates, d.Format(time.DateOnly))
			}
			sort.Strings(dates)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(dates, " "))
		}
		return nil
	},
}
